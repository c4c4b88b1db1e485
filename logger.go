package keymirror

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with keymirror-specific helpers so operation
// logs carry consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, a text handler to stderr at Info level is used.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithTarget adds a morph target name field to the logger.
func (l *Logger) WithTarget(name string) *Logger {
	return &Logger{Logger: l.Logger.With("target", name)}
}

// LogReport logs the outcome of a mirror operation.
func (l *Logger) LogReport(op string, r *Report, err error) {
	if err != nil {
		l.Error(op+" failed", "error", err)
		return
	}
	l.Info(op+" completed",
		"processed", r.Processed,
		"matched", r.Matched,
		"unmatched", r.Unmatched,
		"direction", r.Direction,
	)
	for _, w := range r.Warnings {
		l.Warn(op+": "+w)
	}
}
