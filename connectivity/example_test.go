package connectivity_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/connectivity"
	"github.com/katalvlaran/digraph/core"
)

// ExampleIsConnected contrasts the two reachability interpretations.
func ExampleIsConnected() {
	g := core.New[string](2)
	_ = g.AddArc(1, 0)

	weak, _ := connectivity.IsConnected(g)
	strict, _ := connectivity.IsConnected(g, connectivity.WithDirectedReachability())

	fmt.Println("weakly connected:", weak)
	fmt.Println("reachable from 0:", strict)

	// Output:
	// weakly connected: true
	// reachable from 0: false
}

// ExampleComponents lists the weakly-connected pieces of a graph.
func ExampleComponents() {
	g := core.New[string](5)
	_ = g.AddArc(0, 1)
	_ = g.AddArc(3, 2)

	comps, _ := connectivity.Components(g)
	fmt.Println(comps)

	// Output:
	// [[0 1] [2 3] [4]]
}
