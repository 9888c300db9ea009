package graph

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for the builders.
var (
	// ErrTooFewVertices indicates a builder was asked for a shape it cannot form.
	ErrTooFewVertices = errors.New("graph: too few vertices for requested shape")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("graph: probability must lie in [0, 1]")

	// ErrNeedRandSource indicates a random builder was called without an RNG.
	ErrNeedRandSource = errors.New("graph: random source is required")
)

const minCycleVertices = 3

// Cycle builds the ring 0–1–…–(n-1)–0 with every edge of weight w.
// Edges are emitted for i ascending, i→(i+1)%n.
func Cycle(n int, w float64, opts ...Option) (*AdjacencyList, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	g, err := NewAdjacencyList(n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = g.AddEdge(i, (i+1)%n, w); err != nil {
			return nil, fmt.Errorf("Cycle: %w", err)
		}
	}

	return g, nil
}

// Path builds the chain 0–1–…–(n-1) with every edge of weight w.
func Path(n int, w float64, opts ...Option) (*AdjacencyList, error) {
	if n < 1 {
		return nil, fmt.Errorf("Path: n=%d < min=1: %w", n, ErrTooFewVertices)
	}
	g, err := NewAdjacencyList(n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err = g.AddEdge(i, i+1, w); err != nil {
			return nil, fmt.Errorf("Path: %w", err)
		}
	}

	return g, nil
}

// Random samples each admissible edge independently with probability p and
// gives it an integral weight drawn uniformly from [1, maxWeight]
// (weight 1 when maxWeight < 1). Undirected graphs try pairs i<j, directed
// graphs try every ordered pair i≠j. Trial order is fixed, so a seeded rng
// reproduces the same graph.
func Random(n int, p float64, maxWeight int, rng *rand.Rand, opts ...Option) (*AdjacencyList, error) {
	if n < 1 {
		return nil, fmt.Errorf("Random: n=%d < min=1: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("Random: p=%.6f: %w", p, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("Random: %w", ErrNeedRandSource)
	}
	g, err := NewAdjacencyList(n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		start := 0
		if !g.directed {
			start = i + 1
		}
		for j := start; j < n; j++ {
			if i == j || rng.Float64() >= p {
				continue
			}
			w := 1.0
			if maxWeight > 1 {
				w = float64(1 + rng.Intn(maxWeight))
			}
			if err = g.AddEdge(i, j, w); err != nil {
				return nil, fmt.Errorf("Random: %w", err)
			}
		}
	}

	return g, nil
}
