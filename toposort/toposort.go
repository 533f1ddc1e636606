// Package toposort computes a topological ordering of a core.Graph.
//
// Sort uses Kahn's algorithm: repeatedly emit a vertex whose remaining
// in-degree is zero and decrement the in-degree of its successors. The
// pool of ready vertices is a min-heap, so ties between several
// zero-in-degree candidates always resolve to the lowest vertex id and
// the ordering is deterministic.
//
// If the graph contains a cycle, no zero-in-degree vertex remains while
// unemitted vertices do, and ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V log V + A) (heap operations dominate on sparse graphs)
//   - Memory: O(V)
package toposort

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Sort computes a topological ordering of all vertices in g: for every
// arc u→v, u precedes v in the returned sequence.
// Returns ErrGraphNil for a nil graph and ErrCycleDetected when the
// graph is not a DAG. An empty graph sorts to an empty order.
// Pass WithContext(ctx) to enable cancellation.
func Sort[T any](g *core.Graph[T], options ...Option) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 3. Tally in-degrees with one pass over the adjacency structure
	n := g.VertexCount()
	inDeg := make([]int, n)
	for v := 0; v < n; v++ {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, fmt.Errorf("toposort: NeighborIDs(%d): %w", v, err)
		}
		for _, t := range nbrs {
			inDeg[t]++
		}
	}

	// 4. Seed the ready pool with every source vertex
	ready := &minHeap{}
	for v := 0; v < n; v++ {
		if inDeg[v] == 0 {
			heap.Push(ready, v)
		}
	}

	// 5. Emit lowest-id ready vertex, releasing its successors
	order := make([]int, 0, n)
	for ready.Len() > 0 {
		// cancellation check (once per emission)
		select {
		case <-opts.ctx.Done():
			return nil, opts.ctx.Err()
		default:
		}

		v := heap.Pop(ready).(int)
		order = append(order, v)

		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, fmt.Errorf("toposort: NeighborIDs(%d): %w", v, err)
		}
		for _, t := range nbrs {
			inDeg[t]--
			if inDeg[t] == 0 {
				heap.Push(ready, t)
			}
		}
	}

	// 6. Any unemitted vertex sits on a cycle
	if len(order) != n {
		return nil, fmt.Errorf("%w: emitted %d of %d vertices", ErrCycleDetected, len(order), n)
	}

	return order, nil
}

// minHeap is a min-heap of vertex ids, implementing heap.Interface.
type minHeap []int

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(int)) }

func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}
