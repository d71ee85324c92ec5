package vecmath

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with vecmath-specific fields.
// The vector types never log; batch processing and codecs accept a Logger.
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
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithOp adds an operation name field.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{Logger: l.Logger.With("op", op)}
}

// WithCount adds a count field.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{Logger: l.Logger.With("count", count)}
}

// WithArity adds the vector arity field.
func (l *Logger) WithArity(arity int) *Logger {
	return &Logger{Logger: l.Logger.With("arity", arity)}
}

// LogBatch logs the outcome of a batch operation. Callers attach the
// operation fields with WithOp, WithArity and WithCount.
func (l *Logger) LogBatch(ctx context.Context, chunks int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch failed",
			"chunks", chunks,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "batch completed",
		"chunks", chunks,
		"elapsed", elapsed,
	)
}
