// Package bfs provides breadth-first search over a graph.Graph, returning
// hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a source vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: vertex → hop count; only reached vertices appear
//   - Parent: vertex → predecessor in the BFS tree
//   - Hooks: OnEnqueue (discovery) and OnVisit (dequeue; may abort with an error).
//   - Filtering of individual arcs via WithFilterNeighbor.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Reachability contract
//
//	Unreachable vertices are absent from Depth rather than carrying a sentinel
//	distance. A source that is not a vertex of the graph yields an empty
//	Result and a nil error. Arc weights are ignored; use package dijkstra for
//	weighted distances. On a graph whose weights are all 1 both packages agree.
//
// Determinism
//
//	Neighbors are enqueued in the order the graph reports them, so the visit
//	sequence is reproducible for a given representation.
//
// Complexity (V = |Vertices|, E = |Arcs|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, or a wrapped OnVisit error
//	}
//	path, err := res.PathTo(4)
//
//	hops := bfs.Distances(g, 0) // map[int]int
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath           from PathTo for an unreached vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
