// Package toposort provides options and error definitions for
// topological sorting.
package toposort

import (
	"context"
	"errors"
)

// Sentinel errors for topological sorting.
var (
	// ErrGraphNil is returned when a nil graph pointer is passed.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrCycleDetected indicates the graph is not a DAG: at some point
	// no zero-in-degree vertex remained while vertices were unemitted.
	ErrCycleDetected = errors.New("toposort: cycle detected")
)

// Option configures optional behavior of Sort.
type Option func(*options)

// options holds settings for Sort, currently only cancellation.
type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
