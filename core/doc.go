// Package core provides the fundamental fixed-size directed graph container.
//
// The Graph G = (V, A) is built around two structural choices:
//
//   - Dense vertex ids: vertices are the integers [0, n), with n fixed at
//     construction. There is no vertex insertion or removal; only labels
//     and arcs mutate over the lifetime of a Graph.
//   - Insertion-ordered adjacency: each vertex keeps its outgoing targets
//     in the order AddArc produced them. Traversal packages (bfs, dfs)
//     rely on this order for deterministic, reproducible visit sequences.
//
// Labels are generic: Graph[T] stores one value of type T per vertex,
// zero-initialized and overwritten via SetLabel.
//
// Error policy:
//
//	Every mutating or indexed operation validates its arguments before
//	touching any state (validate-then-mutate); on error the Graph is
//	unchanged. Callers branch on the sentinel with errors.Is:
//
//	  ErrVertexOutOfRange — an index is not in [0, VertexCount())
//	  ErrDuplicateArc     — AddArc on an arc that already exists
//	  ErrArcNotFound      — RemoveArc on an arc that does not exist
//
// Concurrency:
//
//	A Graph performs no internal locking. Concurrent access to one
//	instance must be serialized by the caller; distinct instances own
//	their storage exclusively and never alias (Clone deep-copies).
//
// Structural invariants (label/adjacency length, target ranges, arc
// counter) are re-verified at every mutation boundary when built with
// the digraphcheck tag; release builds compile the checks away.
package core
