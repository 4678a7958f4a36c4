package eval

import (
	"log/slog"

	"github.com/born-ml/tensorism/internal/parallel"
)

type options struct {
	logger   *slog.Logger
	parallel parallel.Config
}

func defaultOptions() options {
	return options{
		logger:   slog.New(slog.DiscardHandler),
		parallel: parallel.Sequential(),
	}
}

// Option configures an expression.
type Option func(*options)

// WithLogger configures structured logging of resolution and evaluation.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	x := eval.New(eval.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithParallel evaluates output positions concurrently according to cfg.
//
// Output positions are independent and written to disjoint slots, but the
// body and every reducer it calls must then be safe for concurrent use:
// pure functions, or state created inside the body.
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) {
		o.parallel = cfg
	}
}
