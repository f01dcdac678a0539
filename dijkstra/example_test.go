package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/dijkstra"
)

// ExampleShortestPath prefers the light shortcut over the direct heavy edge.
func ExampleShortestPath() {
	g := core.NewGraph()
	for id := 1; id <= 5; id++ {
		g.AddVertex(id)
	}
	g.AddEdge(1, 2, 4)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 4, 1)
	g.AddEdge(4, 5, 1)
	g.AddEdge(1, 3, 2)

	p := dijkstra.ShortestPath(g, 1, 5)
	w, _ := g.PathWeight(p)
	fmt.Println(p, "weight", w)

	// Output:
	// 1 -> 3 -> 4 -> 5 weight 4
}

// ExampleDijkstra reports single-source distances.
func ExampleDijkstra() {
	g := core.NewGraph()
	for id := 1; id <= 3; id++ {
		g.AddVertex(id)
	}
	g.AddEdge(1, 2, 7)
	g.AddEdge(2, 3, 2)

	dist, _, _ := dijkstra.Dijkstra(g, dijkstra.Source(3))
	fmt.Println(dist[1], dist[2], dist[3])

	// Output:
	// 9 2 0
}
