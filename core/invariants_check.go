//go:build digraphcheck

package core

import "fmt"

// invariants re-verifies the structural invariants of the graph at each
// mutation boundary. Enabled by the digraphcheck build tag; a violation
// panics, matching the behavior of a debug-assertion build.
//
// Invariants:
//   - len(labels) == len(adj) == n
//   - every stored target id is in [0, n)
//   - the arc counter equals the number of stored arcs
func (g *Graph[T]) invariants() {
	if len(g.labels) != len(g.adj) {
		panic(fmt.Sprintf("core: invariant violation: %d labels vs %d adjacency entries",
			len(g.labels), len(g.adj)))
	}

	stored := 0
	for v, targets := range g.adj {
		for _, t := range targets {
			if t < 0 || t >= len(g.adj) {
				panic(fmt.Sprintf("core: invariant violation: adjacency of %d references vertex %d (order %d)",
					v, t, len(g.adj)))
			}
			stored++
		}
	}
	if stored != g.arcs {
		panic(fmt.Sprintf("core: invariant violation: arc counter %d, stored arcs %d", g.arcs, stored))
	}
}
