package abbrevgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with matcher-specific context.
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
// The matcher uses this by default.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithPattern adds a pattern field to the logger.
func (l *Logger) WithPattern(pattern string) *Logger {
	return &Logger{
		Logger: l.Logger.With("pattern", pattern),
	}
}

// LogQuery logs a completed query.
func (l *Logger) LogQuery(pattern string, results int) {
	l.Debug("query completed",
		"pattern", pattern,
		"results", results,
	)
}

// LogAnalyze logs a lazy analysis pass.
func (l *Logger) LogAnalyze(pending, workers int) {
	l.Debug("entries analyzed",
		"pending", pending,
		"workers", workers,
	)
}

// LogDivergence logs a disagreement between the primary and the legacy
// scorer for the same pattern. The primary result is the one returned.
func (l *Logger) LogDivergence(pattern string, primary, legacy []string) {
	l.Info("scorer divergence",
		"pattern", pattern,
		"primary", primary,
		"legacy", legacy,
	)
}
