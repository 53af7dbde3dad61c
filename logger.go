package intvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with intvec-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// WithLength adds a length field to the logger.
func (l *Logger) WithLength(length int) *Logger {
	return &Logger{
		Logger: l.Logger.With("length", length),
	}
}

// LogInit logs a buffer allocation made by Init.
func (l *Logger) LogInit(ctx context.Context, capacity int, err error) {
	if err != nil {
		l.WarnContext(ctx, "init failed",
			"capacity", capacity,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "init completed",
		"capacity", capacity,
	)
}

// LogGrow logs a reallocation triggered by an insert into a full buffer.
func (l *Logger) LogGrow(ctx context.Context, from, to, length int, err error) {
	if err != nil {
		l.WarnContext(ctx, "grow failed",
			"from", from,
			"to", to,
			"length", length,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "grow completed",
		"from", from,
		"to", to,
		"length", length,
	)
}

// LogCleanup logs the release of a buffer.
func (l *Logger) LogCleanup(ctx context.Context, capacity, length int) {
	l.DebugContext(ctx, "cleanup completed",
		"capacity", capacity,
		"length", length,
	)
}
