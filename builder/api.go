// Package builder constructs canned digraph topologies over core.Graph:
// paths, cycles, complete graphs, stars, and seeded random sparse graphs.
//
// Every constructor returns a fully validated graph; arc insertion order
// is fixed per constructor, so traversal tie-breaks over built graphs
// are reproducible. Labels default to the zero value of T and can be
// assigned with WithLabelFn. Stochastic constructors require an explicit
// random source (WithSeed or WithRand) so results are reproducible by
// construction rather than by accident.
package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Path returns the graph 0→1→…→n-1. n may be 0 (empty) or 1 (no arcs).
func Path[T any](n int, opts ...Option[T]) (*core.Graph[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n = %d", ErrTooFewVertices, n)
	}
	c := resolve(opts)

	g := core.New[T](n)
	for v := 0; v+1 < n; v++ {
		if err := g.AddArc(v, v+1); err != nil {
			return nil, fmt.Errorf("builder: Path: %w", err)
		}
	}

	if err := applyLabels(g, c); err != nil {
		return nil, err
	}

	return g, nil
}

// Cycle returns the graph 0→1→…→n-1→0. n must be at least 1; n == 1
// produces the single self-loop 0→0.
func Cycle[T any](n int, opts ...Option[T]) (*core.Graph[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n = %d, need at least 1", ErrTooFewVertices, n)
	}
	c := resolve(opts)

	g := core.New[T](n)
	for v := 0; v < n; v++ {
		if err := g.AddArc(v, (v+1)%n); err != nil {
			return nil, fmt.Errorf("builder: Cycle: %w", err)
		}
	}

	if err := applyLabels(g, c); err != nil {
		return nil, err
	}

	return g, nil
}

// Complete returns the digraph containing every arc u→v with u ≠ v.
// Arcs insert in ascending (u, v) order.
func Complete[T any](n int, opts ...Option[T]) (*core.Graph[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n = %d", ErrTooFewVertices, n)
	}
	c := resolve(opts)

	g := core.New[T](n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if err := g.AddArc(u, v); err != nil {
				return nil, fmt.Errorf("builder: Complete: %w", err)
			}
		}
	}

	if err := applyLabels(g, c); err != nil {
		return nil, err
	}

	return g, nil
}

// Star returns the graph with arcs 0→1, 0→2, …, 0→n-1. n must be at
// least 1 (the hub alone is legal).
func Star[T any](n int, opts ...Option[T]) (*core.Graph[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n = %d, need at least 1", ErrTooFewVertices, n)
	}
	c := resolve(opts)

	g := core.New[T](n)
	for v := 1; v < n; v++ {
		if err := g.AddArc(0, v); err != nil {
			return nil, fmt.Errorf("builder: Star: %w", err)
		}
	}

	if err := applyLabels(g, c); err != nil {
		return nil, err
	}

	return g, nil
}

// RandomSparse returns a digraph on n vertices with exactly arcCount
// distinct non-loop arcs drawn from the supplied random source.
// Requires WithSeed or WithRand (ErrNeedRandSource otherwise);
// arcCount must fit in a simple digraph (ErrTooManyArcs).
func RandomSparse[T any](n, arcCount int, opts ...Option[T]) (*core.Graph[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n = %d", ErrTooFewVertices, n)
	}
	if arcCount < 0 || arcCount > n*(n-1) {
		return nil, fmt.Errorf("%w: %d arcs on %d vertices (capacity %d)",
			ErrTooManyArcs, arcCount, n, n*(n-1))
	}
	c := resolve(opts)
	if arcCount > 0 && c.rng == nil {
		return nil, ErrNeedRandSource
	}

	g := core.New[T](n)
	for g.ArcCount() < arcCount {
		u := c.rng.Intn(n)
		v := c.rng.Intn(n)
		if u == v {
			continue
		}
		// a duplicate draw simply retries; AddArc validates membership
		if err := g.AddArc(u, v); err != nil {
			continue
		}
	}

	if err := applyLabels(g, c); err != nil {
		return nil, err
	}

	return g, nil
}

// applyLabels assigns fn(id) to every vertex when a label function is set.
func applyLabels[T any](g *core.Graph[T], c config[T]) error {
	if c.labelFn == nil {
		return nil
	}
	for v := 0; v < g.VertexCount(); v++ {
		if err := g.SetLabel(v, c.labelFn(v)); err != nil {
			return fmt.Errorf("builder: labeling: %w", err)
		}
	}

	return nil
}
