package quadtree

import (
	"log/slog"
	"os"

	"github.com/hupe1980/quadtree/geom"
)

// Logger wraps slog.Logger with quadtree-specific helpers.
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
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithBoundary adds the index boundary to every record.
func (l *Logger) WithBoundary(r geom.Rect) *Logger {
	return &Logger{
		Logger: l.Logger.With("boundary", r.String()),
	}
}

// LogInsert logs an insert. replaced is true when an existing entry at the
// same point was overwritten.
func (l *Logger) LogInsert(p geom.Point, replaced bool, err error) {
	if err != nil {
		l.Warn("insert rejected",
			"point", p.String(),
			"error", err,
		)
		return
	}
	l.Debug("insert completed",
		"point", p.String(),
		"replaced", replaced,
	)
}

// LogUpdate logs an update.
func (l *Logger) LogUpdate(p geom.Point, err error) {
	if err != nil {
		l.Warn("update rejected",
			"point", p.String(),
			"error", err,
		)
		return
	}
	l.Debug("update completed",
		"point", p.String(),
	)
}

// LogRemove logs a removal.
func (l *Logger) LogRemove(p geom.Point, removed bool, err error) {
	if err != nil {
		l.Warn("remove rejected",
			"point", p.String(),
			"error", err,
		)
		return
	}
	l.Debug("remove completed",
		"point", p.String(),
		"removed", removed,
	)
}

// LogQuery logs a range query. shape describes the query region.
func (l *Logger) LogQuery(shape string, results int, err error) {
	if err != nil {
		l.Warn("query rejected",
			"shape", shape,
			"error", err,
		)
		return
	}
	l.Debug("query completed",
		"shape", shape,
		"results", results,
	)
}
