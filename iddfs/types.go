package iddfs

import (
	"context"

	"github.com/katalvlaran/mazebeaver/canon"
)

// DefaultDepthCeiling bounds the outer deepening loop. A maze whose true
// shortest path exceeds the ceiling is reported as "no path"; raise it via
// WithDepthCeiling for adversarial workloads.
const DefaultDepthCeiling = 200

// Result is the outcome of a single Solve or SolveFrom call.
type Result struct {
	// Found reports whether Goal was reached within the depth ceiling.
	Found bool
	// Length is the shortest-path length in edges, or -1 if !Found.
	Length int
	// Path is the sequence of canonical states from Start to Goal,
	// inclusive. Nil when LengthOnly was requested or !Found.
	Path []canon.State
}

// Option configures Solve/SolveFrom via functional arguments.
type Option func(*options)

type options struct {
	ctx        context.Context
	ceiling    int
	lengthOnly bool
}

func defaultOptions() options {
	return options{ctx: context.Background(), ceiling: DefaultDepthCeiling}
}

// WithContext installs a context whose cancellation aborts the search
// between depth-limit iterations. Solve returns ctx.Err() in that case.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithDepthCeiling overrides the maximum depth limit tried by the outer
// deepening loop. Values < 0 are ignored.
func WithDepthCeiling(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.ceiling = n
		}
	}
}

// WithLengthOnly skips path reconstruction, for search hot paths that only
// need Result.Length.
func WithLengthOnly() Option {
	return func(o *options) { o.lengthOnly = true }
}
