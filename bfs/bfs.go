// Package bfs provides breadth-first search over a core.Graph,
// returning arc-count distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T any] struct {
	graph   *core.Graph[T]
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
//
// Vertices are visited in first-in-first-out frontier order; a vertex's
// unvisited neighbors enqueue in adjacency (arc-insertion) order, and a
// vertex is marked visited when enqueued, never entering the frontier
// twice. Only vertices reachable from start appear in the Result.
//
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// Complexity: O(V + A) time, O(V) memory.
func BFS[T any](g *core.Graph[T], start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (order %d)", ErrStartOutOfRange, start, n)
	}

	// Prepare walker; Depth and Parent start at -1 (unreached / no parent)
	w := &walker[T]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  newFilled(n, -1),
			Parent: newFilled(n, -1),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, -1)
	// Main loop
	return w.res, w.loop()
}

// newFilled returns a slice of length n with every element set to v.
func newFilled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}

// enqueue marks id visited at depth d, records its parent, calls
// OnEnqueue, and adds it to the queue.
func (w *walker[T]) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[T]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors in adjacency order, applies
// filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker[T]) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: NeighborIDs(%d): %w", item.id, err)
	}
	nextDepth := item.depth + 1
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// check-before-insert: an already-marked vertex never re-enters
		// the frontier
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
