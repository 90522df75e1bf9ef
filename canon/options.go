// SPDX-License-Identifier: MIT

package canon

import "go.uber.org/zap"

// Option configures Canonicalize and Solve.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	// Parallel runs the dimension computation and the variable enumeration
	// with offset assignment on separate goroutines. Default false.
	Parallel bool

	// Logger receives stage-level debug entries. Never nil after
	// gatherOptions; defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns sequential execution and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Parallel: false,
		Logger:   zap.NewNop(),
	}
}

// WithParallel enables intra-call concurrency. Results are identical to
// sequential mode.
func WithParallel() Option {
	return func(o *Options) { o.Parallel = true }
}

// WithSequential disables intra-call concurrency (default).
func WithSequential() Option {
	return func(o *Options) { o.Parallel = false }
}

// WithLogger installs a zap logger. A nil logger keeps the current one.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
