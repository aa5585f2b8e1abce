package randhunt

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with randhunt-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithWorker adds a worker field to the logger.
func (l *Logger) WithWorker(worker int) *Logger {
	return &Logger{
		Logger: l.Logger.With("worker", worker),
	}
}

// WithTries adds a tries field to the logger.
func (l *Logger) WithTries(tries uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("tries", tries),
	}
}

// LogRunStart logs the start of a research run.
func (l *Logger) LogRunStart(ctx context.Context, workers int) {
	l.InfoContext(ctx, "run starting", "workers", workers)
}

// LogRunComplete logs the completion of a research run. processed is the
// authoritative trial count from the result, which under cancellation is
// smaller than the configured total.
func (l *Logger) LogRunComplete(ctx context.Context, processed, hits uint64, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed", "error", err)
		return
	}
	l.InfoContext(ctx, "run completed",
		"processed", processed,
		"hits", hits,
		"duration", duration,
	)
}

// LogCancelled logs a cooperative cancellation.
func (l *Logger) LogCancelled(ctx context.Context, processed, requested uint64) {
	l.WarnContext(ctx, "run cancelled",
		"processed", processed,
		"requested", requested,
	)
}

// LogProgress returns a progress handler that logs every event at debug
// level. Useful as a development sink, alone or combined with other
// handlers.
func (l *Logger) LogProgress() ProgressHandler {
	return func(ev ProgressEvent) error {
		l.WithWorker(ev.Worker).Debug("progress",
			"kind", ev.Kind.String(),
			"current", ev.Current,
			"total", ev.Total,
		)
		return nil
	}
}
