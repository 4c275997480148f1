package bitstring

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitstring-specific helpers.
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

// WithBlob adds the blob name to the logger.
func (l *Logger) WithBlob(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("blob", name),
	}
}

// WithCodec adds the codec name to the logger.
func (l *Logger) WithCodec(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("codec", name),
	}
}

// LogSave logs a snapshot write.
func (l *Logger) LogSave(ctx context.Context, b *BitString, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot save failed",
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "snapshot saved",
		"size", b.Cap(),
		"count", b.Len(),
		"bytes", bytes,
	)
}

// LogLoad logs a snapshot read. b is nil when err is set.
func (l *Logger) LogLoad(ctx context.Context, b *BitString, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot load failed",
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "snapshot loaded",
		"size", b.Cap(),
		"count", b.Len(),
	)
}
