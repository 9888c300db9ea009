// Package optima is a collection of small optimization kernels that return
// an optimal value together with a witness: an answer that achieves it.
//
// Every kernel lives in its own package:
//
//	rodcut/     rod cutting: best revenue and the pieces to cut
//	knapsack/   0/1 and unbounded knapsack: best value and chosen items
//	subseq/     longest strictly decreasing (or increasing) subsequence
//	lcs/        longest common subsequence of two sequences
//	seam/       minimum-cost vertical path through a weight grid, seam carving
//	selection/  randomized quickselect, k largest / k smallest
//	dijkstra/   single-source shortest paths over non-negative weights
//	bfs/, dfs/  hop-count distances and reachability
//	graph/      the Graph capability and its representations
//
// The kernels are pure: they never log, print or touch files. The harness
// package checks them against fixtures and brute-force oracles, and the
// optima command (cmd/optima) exposes both on the command line.
//
//	res, _ := rodcut.Cut(4, []int{1, 5, 8, 9})
//	fmt.Println(res.Revenue, res.Pieces) // 10 [2 2]
//
//	d, _ := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
//	path, _ := d.PathTo(3)
package optima
