package hstr

import "log/slog"

// defaultCapacity matches the bucket count a store starts with when no
// WithCapacity option is given.
const defaultCapacity = 64

type options struct {
	capacity         int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Store.
type Option func(*options)

// WithCapacity sets the initial number of hash buckets.
// Values <= 0 select the default of 64.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = defaultCapacity
		}
		o.capacity = n
	}
}

// WithMetricsCollector configures a metrics collector for lookups and merges.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hstr.BasicMetricsCollector{}
//	store := hstr.NewStore(hstr.WithMetricsCollector(metrics))
//	// ... use store ...
//	stats := metrics.GetStats()
//	fmt.Printf("hits: %d, misses: %d\n", stats.LookupHits, stats.LookupMisses)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for merges.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := hstr.NewJSONLogger(slog.LevelDebug)
//	store := hstr.NewStore(hstr.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		capacity:         defaultCapacity,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
