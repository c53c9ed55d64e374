package hstr

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with hstr-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithStoreID adds a store_id field to the logger.
func (l *Logger) WithStoreID(id uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("store_id", id),
	}
}

// LogMerge logs a completed store merge.
func (l *Logger) LogMerge(ctx context.Context, from uint32, entries, created int, d time.Duration) {
	l.DebugContext(ctx, "store merged",
		"from_store_id", from,
		"entries", entries,
		"created", created,
		"duration", d,
	)
}

// LogInternAll logs a parallel interning run.
func (l *Logger) LogInternAll(ctx context.Context, texts, workers, entries int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "parallel intern failed",
			"texts", texts,
			"workers", workers,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "parallel intern completed",
			"texts", texts,
			"workers", workers,
			"entries", entries,
		)
	}
}
