package hstr

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting store metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A collector shared between stores that are used from different goroutines
// must be safe for concurrent use.
type MetricsCollector interface {
	// RecordLookup is called for every store lookup that reaches the table.
	// Inline atoms never reach the table and are not recorded.
	RecordLookup(hit bool)

	// RecordMerge is called after each merge. entries is the number of entries
	// walked in the absorbed store, created the number that were new to the
	// receiver.
	RecordMerge(entries, created int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLookup(bool)                   {}
func (NoopMetricsCollector) RecordMerge(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	LookupHits      atomic.Int64
	LookupMisses    atomic.Int64
	MergeCount      atomic.Int64
	MergedEntries   atomic.Int64
	MergeCreated    atomic.Int64
	MergeTotalNanos atomic.Int64
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(hit bool) {
	if hit {
		b.LookupHits.Add(1)
	} else {
		b.LookupMisses.Add(1)
	}
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(entries, created int, duration time.Duration) {
	b.MergeCount.Add(1)
	b.MergedEntries.Add(int64(entries))
	b.MergeCreated.Add(int64(created))
	b.MergeTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LookupHits:    b.LookupHits.Load(),
		LookupMisses:  b.LookupMisses.Load(),
		MergeCount:    b.MergeCount.Load(),
		MergedEntries: b.MergedEntries.Load(),
		MergeCreated:  b.MergeCreated.Load(),
		MergeAvgNanos: b.getAvgMergeNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgMergeNanos() int64 {
	count := b.MergeCount.Load()
	if count == 0 {
		return 0
	}
	return b.MergeTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LookupHits    int64
	LookupMisses  int64
	MergeCount    int64
	MergedEntries int64
	MergeCreated  int64
	MergeAvgNanos int64
}
