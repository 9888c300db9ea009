// Package dijkstra implements Dijkstra's shortest-path algorithm over any
// graph.Graph whose arc weights are non-negative.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source vertex
//     to every reachable vertex in O((V + E) log V) time.
//   - It relies on a min-heap with lazy deletion: improved distances are pushed
//     again and stale entries are skipped when popped.
//   - Heap ties are broken by vertex id, so the settle order and the recorded
//     predecessors are reproducible for a given graph.
//
// Reachability contract:
//
//   - Result.Dist holds exactly the vertices reached from the source. There is
//     no "infinity" sentinel: an absent key means unreachable.
//   - A source that is not a vertex of the graph yields an empty Result and a
//     nil error.
//   - On a graph whose weights are all 1, Dist agrees with bfs.Distances.
//
// Key features:
//
//   - WithReturnPath: record predecessors so Result.PathTo can rebuild a path.
//   - WithMaxDistance: do not explore beyond a distance cap.
//   - WithInfEdgeThreshold: treat arcs with weight ≥ threshold as impassable.
//
// Errors:
//
//   - ErrNilGraph        nil graph.
//   - ErrOptionViolation invalid option value.
//   - ErrNegativeWeight  a negative arc was met while relaxing (fail fast, no pre-scan).
//   - ErrNoPath          PathTo on an unreached vertex.
//   - ErrNoPredecessors  PathTo without WithReturnPath.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := res.PathTo(4)
package dijkstra
