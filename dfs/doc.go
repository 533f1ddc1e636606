// Package dfs implements depth-first search and cycle detection on a
// core.Graph.
//
// What
//
//   - DFS(g, start, opts...): traverse from a root, or the full forest
//     via WithFullTraversal
//   - Result reports discovery order (pre-order), per-vertex depth,
//     parent links, and visited flags
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - DetectCycles(g): report a representative set of simple directed
//     cycles (at least one per back edge) in canonical minimal-rotation
//     form
//
// Determinism
//
//	Neighbors are explored in arc-insertion order (core.NeighborIDs),
//	so a vertex with several unvisited neighbors descends into them in
//	the order their arcs were added. Visit sequences and cycle listings
//	are fully reproducible for a given construction sequence.
//
// Complexity (V = |Vertices|, A = |Arcs|)
//
//   - Time:   O(V + A) for traversal, plus hook and filter overhead.
//   - Memory: O(V) for the recursion stack and result slices.
//
// Errors
//
//   - ErrGraphNil          if g is nil.
//   - ErrStartOutOfRange   if start is not in [0, n) in single-source mode.
//   - context.Canceled     if the context is done.
//   - any error returned by OnVisit or OnExit, wrapped with the vertex id.
package dfs
