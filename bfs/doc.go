// Package bfs provides breadth-first search over a core.Graph, returning
// arc-count shortest distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (arc count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit (dequeue) sequence
//   - Depth: slice from vertex id → distance from start (-1 = unreached)
//   - Parent: slice from vertex id → predecessor in the BFS tree (-1 = none)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual arcs via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Because core.NeighborIDs returns targets in arc-insertion order and
//	BFS enqueues neighbors in that order, the visit sequence is fully
//	reproducible for a given construction sequence.
//
// Complexity (V = |Vertices|, A = |Arcs|)
//
//   - Time:   O(V + A)   (each vertex and arc seen at most once)
//   - Memory: O(V)       (for queue, Depth, Parent, visited markers)
//
// Usage
//
//	result, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation, or hook errors
//	}
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrStartOutOfRange   if the start vertex is not in [0, n).
//   - ErrOptionViolation   if an invalid Option is supplied (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
