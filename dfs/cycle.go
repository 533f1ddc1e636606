// Package dfs implements cycle detection for core.Graphs.
// DetectCycles finds cycles using depth-first search with three-color
// marking and back-edge detection: it reports a representative set of
// simple cycles, at least one per back edge. Cycles that close only
// through an already-completed (Black) vertex are not enumerated, so
// the list need not contain every elementary cycle; the boolean result
// is always exact. Self-loops and 2-cycles are genuine cycles in a
// directed graph and are reported.
// Each cycle is canonicalized to its minimal rotation (Booth's
// algorithm) for deduplication, and the final list is sorted for
// deterministic output.
//
// Complexity:
//
//   - Time:   O(V + A + C·L)   (V=#vertices, A=#arcs, C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)     (recursion stack + state + cycle storage)
package dfs

import (
	"sort"

	"github.com/katalvlaran/digraph/core"
)

// DetectCycles inspects graph g for simple directed cycles.
// Returns (true, cycles) if any exist; each reported cycle is a closed
// id sequence [v0, v1, …, v0] in canonical (minimal-rotation) form.
// The listing is a representative set (one cycle per back edge), not an
// exhaustive enumeration of every elementary cycle.
// A nil graph is treated as cycle-free.
func DetectCycles[T any](g *core.Graph[T]) (bool, [][]int) {
	// 1. Nil graph is trivially acyclic
	if g == nil {
		return false, nil
	}

	// 2. Prepare visitation state:
	//    White=0 (unvisited), Gray=1 (in recursion stack), Black=2 (completed)
	n := g.VertexCount()
	state := make([]int, n)
	path := make([]int, 0, n)              // current DFS path (stack) for cycle reconstruction
	seen := make(map[string]struct{}, n)   // deduplication set for cycle signatures
	var cycles [][]int

	// 3. Launch DFS from each unvisited vertex, ascending id order
	for v := 0; v < n; v++ {
		if state[v] == White {
			cycleVisit(g, v, state, &path, seen, &cycles)
		}
	}

	// 4. Sort cycles by their joined signature for deterministic output
	sort.Slice(cycles, func(i, j int) bool {
		return JoinSig(cycles[i]) < JoinSig(cycles[j])
	})

	return len(cycles) > 0, cycles
}

// cycleVisit performs recursive DFS from vertex id, recording every
// back-edge (Gray→Gray) cycle it encounters.
func cycleVisit[T any](
	g *core.Graph[T],
	id int,
	state []int,
	path *[]int,
	seen map[string]struct{},
	cycles *[][]int,
) {
	// 1. Mark current vertex as Gray (in progress) and push it on the path
	state[id] = Gray
	*path = append(*path, id)

	// 2. Explore outgoing arcs in insertion order.
	// id originates from the graph itself, so NeighborIDs cannot fail.
	nbrs, _ := g.NeighborIDs(id)
	for _, nbr := range nbrs {
		switch state[nbr] {
		case White:
			cycleVisit(g, nbr, state, path, seen, cycles)
		case Gray:
			// back-edge closes a cycle through nbr
			recordCycle(nbr, *path, seen, cycles)
		}
	}

	// 3. Backtrack: pop id from the path and mark it Black
	*path = (*path)[:len(*path)-1]
	state[id] = Black
}

// recordCycle extracts and deduplicates the cycle that closes at start.
// path is the current DFS stack, containing [... start ... current].
func recordCycle(start int, path []int, seen map[string]struct{}, cycles *[][]int) {
	// 1. Locate start in the path
	idx := IndexOf(path, start)

	// 2. Extract the cycle segment and close it by appending start
	seq := append([]int(nil), path[idx:]...)
	seq = append(seq, start)

	// 3. Canonicalize and deduplicate
	sig, canon := canonical(seq)
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonical computes the minimal rotation of the closed cycle and its
// joined signature. The rotation direction is preserved: in a directed
// graph a cycle and its reversal are distinct.
func canonical(cycle []int) (string, []int) {
	// drop the duplicated closing element before rotating
	base := cycle[:len(cycle)-1]
	rot := MinimalRotation(base)

	// close the rotated cycle again
	closed := append(append([]int(nil), rot...), rot[0])

	return JoinSig(closed), closed
}
