package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/optima/dfs"
	"github.com/katalvlaran/optima/graph"
)

// ExampleDFS walks a diamond-shaped directed graph in pre-order.
//
//	  0
//	 / \
//	1   2
//	 \ /
//	  3
//	 / \
//	4   5
func ExampleDFS() {
	g, _ := graph.NewAdjacencyList(6, graph.WithDirected())
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}} {
		_ = g.AddEdge(e[0], e[1], 1)
	}
	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output: [0 1 3 4 5 2]
}

// ExampleReachable counts the component of a vertex.
func ExampleReachable() {
	g := graph.Mapping{0: {1}, 1: {0, 2}, 2: {1}, 3: {4}, 4: {3}}
	fmt.Println(len(dfs.Reachable(g, 2)), len(dfs.Reachable(g, 4)))
	// Output: 3 2
}
