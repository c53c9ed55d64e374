package hstr

import (
	"context"
	"time"
)

// Merge absorbs other into s and consumes other.
//
// Every entry of other is interned into s, reusing its text and hash, and
// then redirected to its counterpart in s through an atomic alias. Entries
// are never freed or moved, so atoms already issued by other stay valid; they
// compare equal to atoms issued by s for the same text, with at most one
// extra pointer hop.
//
// After Merge, other is empty and any further Atom or Merge call on it
// panics. Merging a store into itself, or merging nil, does nothing.
func (s *Store) Merge(other *Store) {
	if other == nil || other == s {
		return
	}
	s.checkLive("Merge")
	other.checkLive("Merge")

	start := time.Now()
	entries, created := 0, 0

	for _, bucket := range other.data {
		for _, e := range bucket {
			c, isNew := s.insert(e.text, e.hash, true)
			if isNew {
				created++
			}
			e.alias.Store(c)
			entries++
		}
	}

	other.data = nil
	other.count = 0
	other.merged = true
	other.into = s.id

	d := time.Since(start)
	s.opts.metricsCollector.RecordMerge(entries, created, d)
	s.log.LogMerge(context.Background(), other.id, entries, created, d)
}
