// Package dfs implements depth-first search (single-source and forest)
// on core.Graph, with cancellation, pre- and post-order hooks, depth
// and neighbor limits, and diagnostics.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[T any] struct {
	graph *core.Graph[T] // underlying graph
	opts  Options        // traversal options
	res   *Result        // result collector
}

// DFS performs depth-first search on graph g. If opts include
// WithFullTraversal, it covers all disconnected components; otherwise it
// starts only from start.
//
// A vertex's unvisited neighbors are explored in adjacency
// (arc-insertion) order, each fully before the next (last-in-first-out
// discipline via recursion). Result.Order is the discovery sequence;
// only vertices reachable from the start (or some tree root, in forest
// mode) appear in it.
//
// Complexity: O(V + A) time, O(V) memory for the recursion stack.
func DFS[T any](g *core.Graph[T], start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	n := g.VertexCount()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("%w: %d (order %d)", ErrStartOutOfRange, start, n)
	}

	// 4. Initialize result; Depth and Parent start at -1
	res := &Result{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	walker := &dfsWalker[T]{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree (roots carry no parent)
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Visited[v] {
				if err := walker.traverse(v, 0, -1); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := walker.traverse(start, 0, -1); err != nil {
			return res, err
		}
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits vertex id at the given depth, recursing into unvisited
// neighbors. It honors context cancellation, the depth limit, hooks, and
// filtering. Result fields are written only after the guards pass, so a
// depth-pruned vertex stays fully unmarked (Visited false, Depth and
// Parent -1).
func (w *dfsWalker[T]) traverse(id, depth, parent int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited, record depth, parent link, and discovery order
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.res.Order = append(w.res.Order, id)

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 5. Fetch neighbors once, in insertion order
	nbrs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%d): %w", id, err)
	}

	// 6. Explore each neighbor
	for _, nid := range nbrs {
		// Neighbor filtering
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}

		// Recurse on unvisited
		if !w.res.Visited[nid] {
			if err = w.traverse(nid, depth+1, id); err != nil {
				return err
			}
		}
	}

	// 7. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	return nil
}
