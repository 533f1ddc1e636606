package toposort_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/toposort"
)

// ExampleSort orders a small dependency graph; ties break lowest id first.
func ExampleSort() {
	g := core.New[string](4)
	_ = g.AddArc(0, 1)
	_ = g.AddArc(0, 2)
	_ = g.AddArc(1, 3)
	_ = g.AddArc(2, 3)

	order, err := toposort.Sort(g)
	if err != nil {
		fmt.Println("sort failed:", err)
		return
	}
	fmt.Println(order)

	// Output:
	// [0 1 2 3]
}

// ExampleSort_cycle shows cycle detection on a non-DAG.
func ExampleSort_cycle() {
	g := core.New[string](3)
	_ = g.AddArc(0, 1)
	_ = g.AddArc(1, 2)
	_ = g.AddArc(2, 0)

	_, err := toposort.Sort(g)
	fmt.Println(errors.Is(err, toposort.ErrCycleDetected))

	// Output:
	// true
}
