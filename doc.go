// Package digraph is an in-memory library for dense directed graphs:
// a fixed-size, label-carrying container plus the classic traversal
// and ordering algorithms built on top of it.
//
// What is digraph?
//
//	A small, single-process library organized around one container:
//		• core/         — Graph[T]: n vertices fixed at construction,
//		                  generic labels, arc insertion/removal, degrees
//		• bfs/          — breadth-first search with depths and parent links
//		• dfs/          — depth-first search and cycle detection
//		• toposort/     — deterministic topological sort (Kahn, lowest id first)
//		• connectivity/ — connectivity check and weakly-connected components
//		• builder/      — canned topologies (path, cycle, complete, star, random)
//
// Why choose digraph?
//
//   - Dense integer vertex ids in [0, n) — no hashing, no id allocation
//   - Deterministic traversal order — neighbors iterate in arc-insertion order
//   - Explicit error taxonomy — sentinel errors checked via errors.Is
//   - Pure Go, value semantics — a Graph owns its storage, Clone deep-copies
//
// Graphs are not synchronized internally; a single instance must be
// serialized by the caller. Distinct instances share no state.
//
// Quick example:
//
//	g := core.New[string](4)
//	_ = g.AddArc(0, 1)
//	_ = g.AddArc(0, 2)
//	_ = g.AddArc(1, 3)
//	_ = g.AddArc(2, 3)
//	res, _ := bfs.BFS(g, 0)    // res.Order == [0 1 2 3]
//	ord, _ := toposort.Sort(g) // ord == [0 1 2 3]
package digraph
