package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/transitnet/bfs"
)

// ExampleFewestStops counts hops, not minutes.
func ExampleFewestStops() {
	g := buildScenario()
	g.AddEdge(2, 5, 50)

	fmt.Println(bfs.FewestStops(g, 1, 5))

	// Output:
	// 1 -> 2 -> 5
}
