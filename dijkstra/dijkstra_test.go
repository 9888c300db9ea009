package dijkstra_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optima/bfs"
	"github.com/katalvlaran/optima/dijkstra"
	"github.com/katalvlaran/optima/graph"
)

type wedge struct {
	u, v int
	w    float64
}

func build(t *testing.T, n int, edges []wedge, opts ...graph.Option) *graph.AdjacencyList {
	t.Helper()
	g, err := graph.NewAdjacencyList(n, opts...)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_BadOptions(t *testing.T) {
	g := build(t, 2, []wedge{{0, 1, 1}})
	_, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
	_, err = dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
	_, err = dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(math.NaN()))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g := build(t, 2, []wedge{{0, 1, 1}})
	for _, src := range []int{-1, 2} {
		res, err := dijkstra.Dijkstra(g, src)
		require.NoError(t, err)
		assert.Empty(t, res.Dist)
	}
}

func TestDijkstra_NegativeWeightDetectedOnRelax(t *testing.T) {
	g := build(t, 3, []wedge{{0, 1, 2}, {1, 2, -5}}, graph.WithDirected())
	_, err := dijkstra.Dijkstra(g, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dijkstra.ErrNegativeWeight))

	// the negative arc is not reachable from 2, so no error is raised
	res, err := dijkstra.Dijkstra(g, 2)
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{2: 0}, res.Dist)
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

func TestDijkstra_Cycle(t *testing.T) {
	g, err := graph.Cycle(5, 1)
	require.NoError(t, err)
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{0: 0, 1: 1, 2: 2, 3: 2, 4: 1}, res.Dist)
	assert.Nil(t, res.Prev)

	_, err = res.PathTo(3)
	assert.ErrorIs(t, err, dijkstra.ErrNoPredecessors)
}

func TestDijkstra_Triangle(t *testing.T) {
	g := build(t, 3, []wedge{{0, 1, 1}, {1, 2, 2}, {0, 2, 5}})
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{0: 0, 1: 1, 2: 3}, res.Dist)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}

func TestDijkstra_DirectedUnreachable(t *testing.T) {
	g := build(t, 4, []wedge{{0, 1, 1}, {2, 0, 1}, {1, 3, 4}}, graph.WithDirected())
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{0: 0, 1: 1, 3: 5}, res.Dist)

	_, err = res.PathTo(2)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g, err := graph.Path(5, 2)
	require.NoError(t, err)
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{0: 0, 1: 2, 2: 4}, res.Dist)
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := build(t, 3, []wedge{{0, 1, 100}, {0, 2, 1}, {2, 1, 150}})
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(100))
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{0: 0, 2: 1}, res.Dist)
}

func TestDijkstra_EqualCostTieKeepsFirst(t *testing.T) {
	// 0→1→3 and 0→2→3 both cost 2; vertex 1 settles first (id tie-break)
	g := build(t, 4, []wedge{{0, 1, 1}, {0, 2, 1}, {1, 3, 1}, {2, 3, 1}}, graph.WithDirected())
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Prev[3])
}

func TestDijkstra_ZeroWeightsAndSelfLoops(t *testing.T) {
	g := build(t, 3, []wedge{{0, 0, 3}, {0, 1, 0}, {1, 2, 0}})
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{0: 0, 1: 0, 2: 0}, res.Dist)
}

func TestDijkstra_Matrix(t *testing.T) {
	m, err := graph.NewAdjacencyMatrix(4, graph.WithDirected())
	require.NoError(t, err)
	require.NoError(t, m.AddEdge(0, 1, 4))
	require.NoError(t, m.AddEdge(0, 2, 1))
	require.NoError(t, m.AddEdge(2, 1, 2))
	require.NoError(t, m.AddEdge(1, 3, 1))
	res, err := dijkstra.Dijkstra(m, 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Dist[3])
	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, path)
}

// ------------------------------------------------------------------------
// 3. Properties
// ------------------------------------------------------------------------

// TestDijkstra_AgreesWithBFS checks that unit weights make both kernels agree.
func TestDijkstra_AgreesWithBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		g, err := graph.Random(12, 0.25, 1, rng)
		require.NoError(t, err)
		res, err := dijkstra.Dijkstra(g, 0)
		require.NoError(t, err)
		hops := bfs.Distances(g, 0)
		require.Len(t, res.Dist, len(hops))
		for v, h := range hops {
			assert.Equal(t, float64(h), res.Dist[v], "trial %d vertex %d", trial, v)
		}
	}
}

// TestDijkstra_BruteForce compares against exhaustive simple-path enumeration.
func TestDijkstra_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 30; trial++ {
		g, err := graph.Random(7, 0.4, 9, rng, graph.WithDirected())
		require.NoError(t, err)
		want := bruteForce(g, 0)
		res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
		require.NoError(t, err)
		assert.Equal(t, want, res.Dist, "trial %d", trial)

		// every witness path must cost exactly Dist
		for v, d := range res.Dist {
			path, err := res.PathTo(v)
			require.NoError(t, err)
			assert.Equal(t, d, pathCost(t, g, path))
		}
	}
}

func bruteForce(g graph.Graph, src int) map[int]float64 {
	best := map[int]float64{}
	onPath := make([]bool, g.Order())
	var walk func(v int, cost float64)
	walk = func(v int, cost float64) {
		if cur, ok := best[v]; !ok || cost < cur {
			best[v] = cost
		}
		onPath[v] = true
		for _, a := range g.Neighbors(v) {
			if !onPath[a.To] {
				walk(a.To, cost+a.Weight)
			}
		}
		onPath[v] = false
	}
	walk(src, 0)

	return best
}

func pathCost(t *testing.T, g graph.Graph, path []int) float64 {
	t.Helper()
	total := 0.0
	for i := 1; i < len(path); i++ {
		w := math.Inf(1)
		for _, a := range g.Neighbors(path[i-1]) {
			if a.To == path[i] && a.Weight < w {
				w = a.Weight
			}
		}
		require.False(t, math.IsInf(w, 1), "missing arc %d→%d", path[i-1], path[i])
		total += w
	}

	return total
}
