// Package dfs provides iterative depth-first traversal over a graph.Graph.
//
// DFS returns the pre-order visit sequence, the depth at which each vertex
// was first reached and the discovery tree (Parent). Reachable is the bare
// form: the set of vertices reachable from a source.
//
// Both use an explicit stack; recursion depth never grows with the graph.
// Parallel arcs and self-loops are harmless because a vertex is visited at
// most once. Arc weights are ignored.
//
// Errors:
//
//   - ErrGraphNil         nil graph.
//   - ErrOptionViolation  invalid option (e.g. negative MaxDepth).
//   - Wrapped OnVisit hook errors.
package dfs
