package core

import "fmt"

// VertexCount returns the number of vertices fixed at construction.
//
// Complexity: O(1)
func (g *Graph[T]) VertexCount() int {
	return len(g.labels)
}

// ArcCount returns the total number of arcs currently in the graph.
//
// Complexity: O(1)
func (g *Graph[T]) ArcCount() int {
	return g.arcs
}

// SetLabel overwrites the label of vertex v.
// Returns ErrVertexOutOfRange if v is invalid; the graph is unchanged on error.
//
// Complexity: O(1)
func (g *Graph[T]) SetLabel(v int, label T) error {
	if err := g.checkVertex("", v); err != nil {
		return err
	}

	g.labels[v] = label
	g.invariants()

	return nil
}

// Label returns the label stored at vertex v.
// Returns the zero value of T and ErrVertexOutOfRange if v is invalid.
//
// Complexity: O(1)
func (g *Graph[T]) Label(v int) (T, error) {
	if err := g.checkVertex("", v); err != nil {
		var zero T
		return zero, err
	}

	return g.labels[v], nil
}

// AddArc inserts the arc source→target.
// Both indices must be valid (ErrVertexOutOfRange) and the arc must not
// already exist (ErrDuplicateArc). On error the graph is unchanged.
//
// The position of the new arc among source's existing outgoing arcs
// carries no meaning; appending preserves the insertion order that
// traversal tie-breaks observe.
//
// Complexity: O(outdeg(source)) for the duplicate check.
func (g *Graph[T]) AddArc(source, target int) error {
	// Validate everything before any mutation.
	if err := g.checkVertex("source", source); err != nil {
		return err
	}
	if err := g.checkVertex("target", target); err != nil {
		return err
	}
	if g.hasArc(source, target) {
		return fmt.Errorf("%w: %d->%d", ErrDuplicateArc, source, target)
	}

	g.adj[source] = append(g.adj[source], target)
	g.arcs++
	g.invariants()

	return nil
}

// RemoveArc deletes the arc source→target.
// Out-of-range indices report ErrVertexOutOfRange rather than
// ErrArcNotFound, for clearer diagnostics; a missing arc between valid
// vertices reports ErrArcNotFound. On error the graph is unchanged.
//
// Complexity: O(outdeg(source))
func (g *Graph[T]) RemoveArc(source, target int) error {
	if err := g.checkVertex("source", source); err != nil {
		return err
	}
	if err := g.checkVertex("target", target); err != nil {
		return err
	}

	for i, t := range g.adj[source] {
		if t == target {
			g.adj[source] = append(g.adj[source][:i], g.adj[source][i+1:]...)
			g.arcs--
			g.invariants()

			return nil
		}
	}

	return fmt.Errorf("%w: %d->%d", ErrArcNotFound, source, target)
}

// HasArc reports whether the arc source→target exists.
// Pure query; returns ErrVertexOutOfRange for invalid indices.
//
// Complexity: O(outdeg(source))
func (g *Graph[T]) HasArc(source, target int) (bool, error) {
	if err := g.checkVertex("source", source); err != nil {
		return false, err
	}
	if err := g.checkVertex("target", target); err != nil {
		return false, err
	}

	return g.hasArc(source, target), nil
}

// NeighborIDs returns the targets of v's outgoing arcs, in insertion
// order. The returned slice is a copy; mutating it does not affect the
// graph. Returns ErrVertexOutOfRange for an invalid v.
//
// Complexity: O(outdeg(v))
func (g *Graph[T]) NeighborIDs(v int) ([]int, error) {
	if err := g.checkVertex("", v); err != nil {
		return nil, err
	}

	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// OutDegree returns the number of arcs leaving v.
//
// Complexity: O(1)
func (g *Graph[T]) OutDegree(v int) (int, error) {
	if err := g.checkVertex("", v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// InDegree returns the number of arcs ending at v, counted over every
// vertex's adjacency.
//
// Complexity: O(V + A) where A is the total arc count.
func (g *Graph[T]) InDegree(v int) (int, error) {
	if err := g.checkVertex("", v); err != nil {
		return 0, err
	}

	count := 0
	for _, targets := range g.adj {
		for _, t := range targets {
			if t == v {
				count++
			}
		}
	}

	return count, nil
}

// hasArc is the unchecked membership scan behind AddArc/RemoveArc/HasArc.
func (g *Graph[T]) hasArc(source, target int) bool {
	for _, t := range g.adj[source] {
		if t == target {
			return true
		}
	}

	return false
}
