package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/searchlab/core"
)

// ExampleGraph_Neighbors shows that outgoing arcs are always listed by
// ascending destination, regardless of insertion order.
func ExampleGraph_Neighbors() {
	g := core.NewGraph()
	_ = g.AddNode(1, 4, 1)
	_ = g.AddNode(2, 2, 2)
	_ = g.AddNode(3, 4, 4)
	_ = g.AddEdge(2, 3, 4)
	_ = g.AddEdge(2, 1, 4)

	arcs, _ := g.Neighbors(2)
	for _, a := range arcs {
		fmt.Printf("2 -> %d (%.0f)\n", a.To, a.Cost)
	}
	// Output:
	// 2 -> 1 (4)
	// 2 -> 3 (4)
}

// ExampleGraph_AddEdge_duplicate demonstrates the default duplicate-edge policy.
func ExampleGraph_AddEdge_duplicate() {
	g := core.NewGraph()
	_ = g.AddNode(1, 0, 0)
	_ = g.AddNode(2, 1, 0)
	_ = g.AddEdge(1, 2, 3)

	err := g.AddEdge(1, 2, 7)
	fmt.Println(errors.Is(err, core.ErrDuplicateEdge))
	// Output:
	// true
}
