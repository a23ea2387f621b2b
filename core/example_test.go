package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/busroute/core"
)

// ExampleGraph_EdgeWeight shows that an absent edge is reported as an error,
// never as a weight.
func ExampleGraph_EdgeWeight() {
	g, _ := core.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 4)
	_, _ = g.AddEdge(1, 2, 0)

	w, _ := g.EdgeWeight(2, 1)
	fmt.Println("1-2:", w)

	_, err := g.EdgeWeight(0, 2)
	fmt.Println("0-2 missing:", errors.Is(err, core.ErrEdgeNotFound))
	// Output:
	// 1-2: 0
	// 0-2 missing: true
}

// ExampleGraph_Neighbors lists the half-edges of a vertex in insertion order.
func ExampleGraph_Neighbors() {
	g, _ := core.NewGraph(4)
	_, _ = g.AddEdge(0, 3, 16)
	_, _ = g.AddEdge(0, 1, 24)
	_, _ = g.AddEdge(2, 0, 9)

	nbrs, _ := g.Neighbors(0)
	for _, h := range nbrs {
		fmt.Printf("0 -> %d (%d)\n", h.To, h.Weight)
	}
	// Output:
	// 0 -> 3 (16)
	// 0 -> 1 (24)
	// 0 -> 2 (9)
}
