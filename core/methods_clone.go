package core

// Clone returns a deep copy of the graph: labels, adjacency, and arc
// counter. The clone shares no storage with the receiver, so subsequent
// mutations of either instance never affect the other.
//
// Label values are copied by assignment; if T itself contains references
// (maps, slices, pointers), those referents are shared between the two
// graphs, mirroring how labels enter the graph through SetLabel.
//
// Complexity: O(V + A)
func (g *Graph[T]) Clone() *Graph[T] {
	clone := &Graph[T]{
		labels: make([]T, len(g.labels)),
		adj:    make([][]int, len(g.adj)),
		arcs:   g.arcs,
	}
	copy(clone.labels, g.labels)

	for v, targets := range g.adj {
		if len(targets) == 0 {
			continue
		}
		dup := make([]int, len(targets))
		copy(dup, targets)
		clone.adj[v] = dup
	}
	clone.invariants()

	return clone
}
