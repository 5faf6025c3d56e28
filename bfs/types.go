package bfs

import (
	"context"

	"github.com/katalvlaran/mazebeaver/canon"
)

// Result is the outcome of a single Solve call.
type Result struct {
	// Found reports whether Goal was reached.
	Found bool
	// Length is the shortest-path length in edges, or -1 if !Found.
	Length int
	// Path is the sequence of canonical states from Start to Goal,
	// inclusive. Nil when LengthOnly was requested or !Found.
	Path []canon.State
}

// Option configures Solve via functional arguments.
type Option func(*options)

type options struct {
	ctx        context.Context
	lengthOnly bool
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext installs a context whose cancellation aborts the search
// between frontier expansions. Solve returns ctx.Err() in that case.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLengthOnly skips path reconstruction, for search hot paths that only
// need Result.Length.
func WithLengthOnly() Option {
	return func(o *options) { o.lengthOnly = true }
}
