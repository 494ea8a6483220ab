package core_test

import (
	"fmt"

	"github.com/katalvlaran/spindle/core"
)

// ExampleGraph_Edges builds a triangle and lists its edges.
func ExampleGraph_Edges() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(3, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	fmt.Println(g.Edges())
	// Output: [[1 2] [1 3] [2 3]]
}
