package quadtree

import "log/slog"

type options struct {
	logger   *Logger
	maxDepth int
}

// Option configures an Index.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := quadtree.NewJSONLogger(slog.LevelDebug)
//	idx, _ := quadtree.New[string](8, boundary, quadtree.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMaxDepth caps how deep leaves may be subdivided. A full leaf at the
// maximum depth keeps accepting entries past the split threshold instead of
// splitting again.
//
// The default of 0 means unlimited. Without a cap, more than splitThreshold
// entries packed into a tiny area keep halving leaves, and points closer
// together than float64 can resolve at that scale never separate. Callers
// inserting heavily clustered data should set a cap.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

func applyOptions(optFns []Option) options {
	o := options{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
