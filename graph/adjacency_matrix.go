package graph

import (
	"fmt"
	"math"
)

// AdjacencyMatrix stores weights in a dense V×V matrix, +Inf meaning "no edge".
// The diagonal is never reported by Neighbors, so self-loops cannot be stored.
// Space O(V²); Neighbors is O(V); HasEdge is O(1).
type AdjacencyMatrix struct {
	directed bool
	data     [][]float64
}

// NewAdjacencyMatrix returns an edgeless graph on n vertices.
func NewAdjacencyMatrix(n int, opts ...Option) (*AdjacencyMatrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}
	o := buildOptions(opts)

	inf := math.Inf(1)
	data := make([][]float64, n)
	for i := range data {
		row := make([]float64, n)
		for j := range row {
			row[j] = inf
		}
		row[i] = 0
		data[i] = row
	}

	return &AdjacencyMatrix{directed: o.directed, data: data}, nil
}

// Order returns the number of vertices.
func (m *AdjacencyMatrix) Order() int { return len(m.data) }

// Directed reports whether AddEdge records a single direction.
func (m *AdjacencyMatrix) Directed() bool { return m.directed }

// AddEdge sets the weight of u→v (and v→u when undirected), replacing any
// previous weight. Self-loops are ignored.
func (m *AdjacencyMatrix) AddEdge(u, v int, w float64) error {
	n := len(m.data)
	if !inRange(u, n) || !inRange(v, n) {
		return fmt.Errorf("%w: edge %d→%d in graph of order %d", ErrVertexOutOfRange, u, v, n)
	}
	if !validWeight(w) {
		return fmt.Errorf("%w: edge %d→%d weight=%v", ErrBadWeight, u, v, w)
	}
	if u == v {
		return nil
	}
	m.data[u][v] = w
	if !m.directed {
		m.data[v][u] = w
	}

	return nil
}

// HasEdge reports whether u→v carries a finite weight.
func (m *AdjacencyMatrix) HasEdge(u, v int) bool {
	n := len(m.data)
	if !inRange(u, n) || !inRange(v, n) || u == v {
		return false
	}

	return !math.IsInf(m.data[u][v], 1)
}

// Weight returns the weight of u→v and whether the edge exists.
func (m *AdjacencyMatrix) Weight(u, v int) (float64, bool) {
	if !m.HasEdge(u, v) {
		return 0, false
	}

	return m.data[u][v], true
}

// Neighbors scans row v in column order. A fresh slice is built per call.
func (m *AdjacencyMatrix) Neighbors(v int) []Arc {
	if !inRange(v, len(m.data)) {
		return nil
	}
	var out []Arc
	for j, w := range m.data[v] {
		if j == v || math.IsInf(w, 1) {
			continue
		}
		out = append(out, Arc{To: j, Weight: w})
	}

	return out
}
