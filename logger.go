package zk

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vector-specific context.
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

// LogGrow logs a storage reallocation.
func (l *Logger) LogGrow(from, to int, bytes int64) {
	l.Debug("vector grown",
		"from", from,
		"to", to,
		"bytes", bytes,
	)
}

// LogAllocFailure logs a refused allocation.
func (l *Logger) LogAllocFailure(op string, slots int, bytes int64, err error) {
	l.Error("allocation failed",
		"op", op,
		"slots", slots,
		"bytes", bytes,
		"error", err,
	)
}

// LogFree logs the destruction of a vector holding length live elements.
func (l *Logger) LogFree(length int, cleaned bool) {
	l.Debug("vector freed",
		"length", length,
		"cleanup", cleaned,
	)
}
