// Package connectivity answers reachability questions over a core.Graph:
// whether the graph is connected, and how it splits into components.
//
// Two interpretations of "connected" exist for a directed graph, and the
// package supports both:
//
//   - Default (weak connectivity): every arc is treated as bidirectional
//     reachability; the graph is connected iff a single traversal from
//     vertex 0 over this symmetrized adjacency visits all n vertices.
//     This is the textbook convention for "is the graph in one piece".
//   - WithDirectedReachability: arcs keep their orientation; the graph
//     is connected iff every vertex is reachable from vertex 0 along
//     directed arcs.
//
// An empty graph is vacuously connected; a single vertex is trivially so.
//
// Complexity: O(V + A) time, O(V + A) memory for the symmetrized view.
package connectivity

import (
	"errors"
	"sort"

	"github.com/katalvlaran/digraph/core"
)

// ErrGraphNil is returned when a nil graph pointer is passed.
var ErrGraphNil = errors.New("connectivity: graph is nil")

// Option configures connectivity queries.
type Option func(*options)

type options struct {
	directed bool // follow arc orientation instead of symmetrizing
}

func defaultOptions() options {
	return options{directed: false}
}

// WithDirectedReachability makes IsConnected follow arc orientation:
// connected means every vertex is reachable from vertex 0 along
// directed arcs. The default treats arcs as bidirectional.
func WithDirectedReachability() Option {
	return func(o *options) {
		o.directed = true
	}
}

// IsConnected reports whether g is connected under the chosen
// interpretation (see the package comment). Returns ErrGraphNil for a
// nil graph; an empty graph is vacuously connected.
func IsConnected[T any](g *core.Graph[T], opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	if n == 0 {
		return true, nil
	}

	adj := forwardAdjacency(g)
	if !o.directed {
		symmetrize(adj)
	}

	return len(sweep(adj, 0, make([]bool, n))) == n, nil
}

// Components returns the weakly-connected components of g, one
// ascending id slice per component, ordered by each component's lowest
// member. Returns ErrGraphNil for a nil graph; an empty graph has no
// components.
func Components[T any](g *core.Graph[T]) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	adj := forwardAdjacency(g)
	symmetrize(adj)

	visited := make([]bool, n)
	var comps [][]int
	// v ascends, so each sweep starts at its component's lowest member
	for v := 0; v < n; v++ {
		if visited[v] {
			continue
		}
		members := sweep(adj, v, visited)
		sort.Ints(members)
		comps = append(comps, members)
	}

	return comps, nil
}

// forwardAdjacency snapshots g's adjacency into plain slices.
func forwardAdjacency[T any](g *core.Graph[T]) [][]int {
	n := g.VertexCount()
	adj := make([][]int, n)
	for v := 0; v < n; v++ {
		// v iterates [0, n), so NeighborIDs cannot fail
		nbrs, _ := g.NeighborIDs(v)
		adj[v] = nbrs
	}

	return adj
}

// symmetrize adds the reverse of every arc in place, turning adj into
// an undirected reachability view.
func symmetrize(adj [][]int) {
	// snapshot the slice headers: appends below must not extend the
	// ranges being iterated
	forward := make([][]int, len(adj))
	copy(forward, adj)
	for u, targets := range forward {
		for _, v := range targets {
			adj[v] = append(adj[v], u)
		}
	}
}

// sweep runs an iterative breadth-first pass over adj from start,
// marking visited, and returns the newly visited vertices.
func sweep(adj [][]int, start int, visited []bool) []int {
	reached := []int{start}
	visited[start] = true
	for i := 0; i < len(reached); i++ {
		v := reached[i]
		for _, nbr := range adj[v] {
			if !visited[nbr] {
				visited[nbr] = true
				reached = append(reached, nbr)
			}
		}
	}

	return reached
}
