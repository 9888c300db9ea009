package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/optima/dijkstra"
	"github.com/katalvlaran/optima/graph"
)

// ExampleDijkstra_triangle computes distances on a small undirected triangle.
func ExampleDijkstra_triangle() {
	g, _ := graph.NewAdjacencyList(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[0]=%g, dist[1]=%g, dist[2]=%g\n", res.Dist[0], res.Dist[1], res.Dist[2])
	// Output: dist[0]=0, dist[1]=1, dist[2]=3
}

// ExampleResult_PathTo rebuilds a path on a directed graph.
func ExampleResult_PathTo() {
	g, _ := graph.NewAdjacencyList(4, graph.WithDirected())
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 1)
	_ = g.AddEdge(1, 3, 3)
	_ = g.AddEdge(2, 3, 5)

	res, _ := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	path, _ := res.PathTo(3)
	fmt.Println(path, res.Dist[3])
	// Output: [0 1 3] 5
}

// ExampleDijkstra_unreachable shows that unreachable vertices are absent.
func ExampleDijkstra_unreachable() {
	g := graph.Mapping{0: {1}, 1: {0}, 2: {3}, 3: {2}}
	res, _ := dijkstra.Dijkstra(g, 0)
	_, ok := res.Dist[3]
	fmt.Println(len(res.Dist), ok)
	// Output: 2 false
}
