package graph

import "fmt"

// Edge is a stored u→v arc of an EdgeList.
type Edge struct {
	From, To int
	Weight   float64
}

// EdgeList keeps a flat slice of arcs. Compact and trivially iterable, but
// Neighbors and HasEdge cost O(E).
type EdgeList struct {
	n        int
	directed bool
	edges    []Edge
}

// NewEdgeList returns an edgeless graph on n vertices.
func NewEdgeList(n int, opts ...Option) (*EdgeList, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}
	o := buildOptions(opts)

	return &EdgeList{n: n, directed: o.directed}, nil
}

// Order returns the number of vertices.
func (l *EdgeList) Order() int { return l.n }

// Directed reports whether AddEdge records a single direction.
func (l *EdgeList) Directed() bool { return l.directed }

// AddEdge appends u→v (and v→u when undirected).
func (l *EdgeList) AddEdge(u, v int, w float64) error {
	if !inRange(u, l.n) || !inRange(v, l.n) {
		return fmt.Errorf("%w: edge %d→%d in graph of order %d", ErrVertexOutOfRange, u, v, l.n)
	}
	if !validWeight(w) {
		return fmt.Errorf("%w: edge %d→%d weight=%v", ErrBadWeight, u, v, w)
	}
	l.edges = append(l.edges, Edge{From: u, To: v, Weight: w})
	if !l.directed && u != v {
		l.edges = append(l.edges, Edge{From: v, To: u, Weight: w})
	}

	return nil
}

// Edges returns the stored arcs; undirected edges appear once per direction.
func (l *EdgeList) Edges() []Edge { return l.edges }

// HasEdge reports whether at least one arc u→v exists.
func (l *EdgeList) HasEdge(u, v int) bool {
	for _, e := range l.edges {
		if e.From == u && e.To == v {
			return true
		}
	}

	return false
}

// Neighbors collects the arcs whose tail is v, in insertion order.
func (l *EdgeList) Neighbors(v int) []Arc {
	if !inRange(v, l.n) {
		return nil
	}
	var out []Arc
	for _, e := range l.edges {
		if e.From == v {
			out = append(out, Arc{To: e.To, Weight: e.Weight})
		}
	}

	return out
}
