package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/optima/bfs"
	"github.com/katalvlaran/optima/graph"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
// Cell (i,j) is vertex i*3+j.
func ExampleBFS_gridTraversal() {
	g, _ := graph.NewAdjacencyList(9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := i*3 + j
			// connect to right neighbor
			if j+1 < 3 {
				_ = g.AddEdge(v, v+1, 1)
			}
			// connect to down neighbor
			if i+1 < 3 {
				_ = g.AddEdge(v, v+3, 1)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth[8])
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// 4
}

// ExampleBFS_shortestPathNetwork finds the fewest-hop path when two routes compete:
// 0–1–2–3–10 (4 hops) and 0–4–5–10 (3 hops).
func ExampleBFS_shortestPathNetwork() {
	g, _ := graph.NewAdjacencyList(11)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 10}, {0, 4}, {4, 5}, {5, 10}, {2, 6}, {6, 7}, {3, 8}, {8, 9}} {
		_ = g.AddEdge(e[0], e[1], 1)
	}

	res, _ := bfs.BFS(g, 0)
	path, err := res.PathTo(10)
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [0 4 5 10]
}

// ExampleDistances adapts a legacy neighbor map and reads hop counts.
func ExampleDistances() {
	legacy := graph.Mapping{0: {1, 4}, 1: {0, 2}, 2: {1, 3}, 3: {2, 4}, 4: {3, 0}}
	hops := bfs.Distances(legacy, 0)
	for v := 0; v < legacy.Order(); v++ {
		fmt.Printf("%d:%d ", v, hops[v])
	}
	fmt.Println()
	// Output:
	// 0:0 1:1 2:2 3:2 4:1
}

// ExampleBFS_depthLimitOnChain applies WithMaxDepth to a chain of 10 vertices.
func ExampleBFS_depthLimitOnChain() {
	g, _ := graph.Path(10, 1, graph.WithDirected())

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 2]
}
