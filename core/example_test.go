package core_test

import (
	"fmt"

	"github.com/katalvlaran/modgraph/core"
)

// ExampleGraph builds a tiny weighted directed graph and walks it
// deterministically.
func ExampleGraph() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("3", "7", -1)
	_, _ = g.AddEdge("7", "3", 1)
	_, _ = g.AddEdge("11", "3", -1)

	fmt.Println(g.Vertices())
	for _, e := range g.Edges() {
		fmt.Printf("%s→%s %v\n", e.From, e.To, e.Weight)
	}
	// Output:
	// [11 3 7]
	// 11→3 (-1+0i)
	// 3→7 (-1+0i)
	// 7→3 (1+0i)
}
