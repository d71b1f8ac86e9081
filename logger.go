package reclist

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with reclist-specific helpers.
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

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogLoad logs a bulk load.
func (l *Logger) LogLoad(count, skipped int) {
	if skipped > 0 {
		l.Warn("load skipped records without id",
			"count", count,
			"skipped", skipped,
		)
		return
	}
	l.Debug("load completed",
		"count", count,
	)
}

// LogOrder logs a reordering pass.
func (l *Logger) LogOrder(rules, items int) {
	l.Debug("order applied",
		"rules", rules,
		"items", items,
	)
}

// LogFilter logs a re-filter pass.
func (l *Logger) LogFilter(rules, matched, total int) {
	l.Debug("filter applied",
		"rules", rules,
		"matched", matched,
		"total", total,
	)
}

// LogPage logs a change of the visible window.
func (l *Logger) LogPage(page, numPages, visible int) {
	l.Debug("page updated",
		"page", page,
		"num_pages", numPages,
		"visible", visible,
	)
}

// LogSelection logs a selection change.
func (l *Logger) LogSelection(op string, selected int, active string) {
	l.Debug("selection changed",
		"op", op,
		"selected", selected,
		"active", active,
	)
}
