package graph

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction.
var (
	// ErrVertexOutOfRange indicates a vertex outside 0..Order()-1.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrNegativeOrder indicates a constructor was asked for fewer than zero vertices.
	ErrNegativeOrder = errors.New("graph: vertex count must be non-negative")

	// ErrBadWeight indicates a NaN or +Inf weight; the matrix form reserves +Inf for "no edge".
	ErrBadWeight = errors.New("graph: weight must be a finite number")
)

// Arc is one outgoing edge as seen from its tail vertex.
type Arc struct {
	To     int     // head vertex
	Weight float64 // cost of the arc; unweighted consumers ignore it
}

// Graph is the only view the kernels have of a graph: dense vertex ids
// 0..Order()-1 and the outgoing arcs of each vertex.
//
// Directedness lives in the representation. An undirected graph simply reports
// every edge from both endpoints.
type Graph interface {
	// Order returns the number of vertices.
	Order() int

	// Neighbors returns the outgoing arcs of v, or nil when v is not a vertex.
	// Callers must not modify the returned slice.
	Neighbors(v int) []Arc
}

// Option configures a representation at construction time.
type Option func(*options)

type options struct {
	directed bool
}

// WithDirected makes AddEdge record only the u→v arc.
// The default is undirected: AddEdge(u, v, w) records u→v and v→u.
func WithDirected() Option {
	return func(o *options) {
		o.directed = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// inRange reports whether v is a vertex of a graph with n vertices.
func inRange(v, n int) bool {
	return v >= 0 && v < n
}

// validWeight rejects NaN and +Inf.
func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 1)
}
