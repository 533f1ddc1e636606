// Package dfs defines types and options for depth-first traversal,
// including cancellation, pre-/post-order hooks, depth limiting,
// neighbor filtering, full-graph (forest) traversal, and diagnostics.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates the start vertex is not in [0, n).
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-graph mode, and diagnostics.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order).
	OnExit func(id int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor id before
	// recursing. Return true to traverse into that neighbor, false to skip.
	FilterNeighbor func(id int) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in
	// ascending id order, covering disconnected components (forest
	// traversal). Default is false.
	FullTraversal bool

	// SkippedNeighbors tracks how many neighbor visits were skipped due
	// to FilterNeighbor returning false.
	SkippedNeighbors int
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		OnVisit:          nil,
		OnExit:           nil,
		MaxDepth:         -1,
		FilterNeighbor:   nil,
		FullTraversal:    false,
		SkippedNeighbors: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor ids.
// If fn(id) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(id int) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// DFS restarts from each unvisited vertex, covering disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
//
// Vertices are dense ids, so Depth, Parent, and Visited are slices
// indexed by vertex id.
type Result struct {
	// Order records vertices in discovery (pre-order) sequence.
	Order []int

	// Depth maps each vertex id to its distance (#arcs) from its tree
	// root; -1 for unreached vertices.
	Depth []int

	// Parent maps each vertex id to the vertex it was discovered from;
	// -1 for tree roots and unreached vertices.
	Parent []int

	// Visited flags which vertices were reached during the traversal.
	Visited []bool

	// SkippedNeighbors reports how many neighbor visits were skipped by
	// FilterNeighbor, aggregated across all trees.
	SkippedNeighbors int
}
