package graph

import "fmt"

// AdjacencyList stores, for every vertex, the slice of its outgoing arcs.
// Space O(V + E); Neighbors is O(1).
type AdjacencyList struct {
	directed bool
	adj      [][]Arc
}

// NewAdjacencyList returns an edgeless graph on n vertices.
func NewAdjacencyList(n int, opts ...Option) (*AdjacencyList, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}
	o := buildOptions(opts)

	return &AdjacencyList{
		directed: o.directed,
		adj:      make([][]Arc, n),
	}, nil
}

// Order returns the number of vertices.
func (g *AdjacencyList) Order() int { return len(g.adj) }

// Directed reports whether AddEdge records a single direction.
func (g *AdjacencyList) Directed() bool { return g.directed }

// AddEdge appends the arc u→v (and v→u when undirected).
// Parallel edges are kept; a self-loop is recorded once.
func (g *AdjacencyList) AddEdge(u, v int, w float64) error {
	n := len(g.adj)
	if !inRange(u, n) || !inRange(v, n) {
		return fmt.Errorf("%w: edge %d→%d in graph of order %d", ErrVertexOutOfRange, u, v, n)
	}
	if !validWeight(w) {
		return fmt.Errorf("%w: edge %d→%d weight=%v", ErrBadWeight, u, v, w)
	}
	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: w})
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], Arc{To: u, Weight: w})
	}

	return nil
}

// HasEdge reports whether at least one arc u→v exists.
func (g *AdjacencyList) HasEdge(u, v int) bool {
	if !inRange(u, len(g.adj)) {
		return false
	}
	for _, a := range g.adj[u] {
		if a.To == v {
			return true
		}
	}

	return false
}

// Neighbors returns the arcs leaving v in insertion order.
func (g *AdjacencyList) Neighbors(v int) []Arc {
	if !inRange(v, len(g.adj)) {
		return nil
	}

	return g.adj[v]
}
