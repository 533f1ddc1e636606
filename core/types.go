// Package core defines the Graph type, its sentinel errors, and the
// constructor. Methods live in methods.go and siblings.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a supplied vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrDuplicateArc indicates an attempt to add an arc that already exists.
	ErrDuplicateArc = errors.New("core: arc already exists")

	// ErrArcNotFound indicates an attempt to remove a non-existent arc.
	ErrArcNotFound = errors.New("core: arc not found")
)

// Graph is a directed graph over the fixed vertex set {0, …, n-1},
// each vertex carrying one label of type T.
//
// The vertex count is immutable after construction; labels and arcs are
// mutable. Adjacency is stored as insertion-ordered slices, so the
// neighbor order observed by traversals is the order arcs were added.
//
// A Graph is not safe for concurrent use; callers must serialize access
// to a shared instance.
type Graph[T any] struct {
	labels []T     // vertex id → label; len == n
	adj    [][]int // vertex id → outgoing targets, in insertion order
	arcs   int     // total number of arcs, kept in sync by AddArc/RemoveArc
}

// New returns a Graph with n unlabeled, arc-less vertices.
// n == 0 is legal and produces an empty graph. A negative n panics:
// the vertex count is a structural parameter, not runtime input.
//
// Complexity: O(n)
func New[T any](n int) *Graph[T] {
	if n < 0 {
		panic(fmt.Sprintf("core: New called with negative vertex count %d", n))
	}

	return &Graph[T]{
		labels: make([]T, n),
		adj:    make([][]int, n),
	}
}

// checkVertex validates that v indexes an existing vertex. role names the
// argument in diagnostics ("source", "target") and may be empty.
func (g *Graph[T]) checkVertex(role string, v int) error {
	if v >= 0 && v < len(g.labels) {
		return nil
	}
	if role == "" {
		return fmt.Errorf("%w: vertex %d (order %d)", ErrVertexOutOfRange, v, len(g.labels))
	}

	return fmt.Errorf("%w: %s vertex %d (order %d)", ErrVertexOutOfRange, role, v, len(g.labels))
}
