// Package graph provides the Graph capability used by every search kernel in
// optima, together with four interchangeable representations.
//
// What:
//
//   - Graph: Order() and Neighbors(v) over dense vertex ids 0..n-1.
//   - AdjacencyList:   O(V+E) space, O(deg) neighbor enumeration.
//   - AdjacencyMatrix: O(V²) space, O(1) HasEdge, +Inf marks a missing edge.
//   - EdgeList:        flat arc slice, O(E) neighbor enumeration.
//   - Mapping:         adapter for legacy map[int][]int neighbor maps (unit weights).
//
// Kernels never inspect the concrete type. A graph is undirected exactly when
// its Neighbors relation is symmetric; the representations above produce that
// symmetry themselves unless built WithDirected().
//
// Builders:
//
//	g, _ := graph.Cycle(5, 1)           // 0–1–2–3–4–0, unit weights
//	g, _ := graph.Random(8, 0.4, 9, rng) // Erdős–Rényi sample, weights 1..9
//
// Errors:
//
//   - ErrVertexOutOfRange   AddEdge endpoint outside 0..n-1.
//   - ErrNegativeOrder      constructor called with n < 0.
//   - ErrBadWeight          NaN or +Inf weight.
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource from builders.
package graph

var (
	_ Graph = (*AdjacencyList)(nil)
	_ Graph = (*AdjacencyMatrix)(nil)
	_ Graph = (*EdgeList)(nil)
	_ Graph = Mapping(nil)
)
