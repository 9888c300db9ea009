package dfs_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optima/bfs"
	"github.com/katalvlaran/optima/dfs"
	"github.com/katalvlaran/optima/graph"
)

func directed(t *testing.T, n int, edges [][2]int) *graph.AdjacencyList {
	t.Helper()
	g, err := graph.NewAdjacencyList(n, graph.WithDirected())
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g
}

// diamond: 0→1, 0→2, 1→3, 2→3, 3→4, 3→5
func diamond(t *testing.T) *graph.AdjacencyList {
	return directed(t, 6, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}})
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(diamond(t), 0, dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)

	res, err := dfs.DFS(diamond(t), 6)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
}

func TestDFS_PreOrder(t *testing.T) {
	res, err := dfs.DFS(diamond(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4, 5, 2}, res.Order)
	assert.Equal(t, map[int]int{1: 0, 3: 1, 4: 3, 5: 3, 2: 0}, res.Parent)
	assert.Equal(t, 3, res.Depth[4])
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(diamond(t), 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestDFS_Filter(t *testing.T) {
	res, err := dfs.DFS(diamond(t), 0, dfs.WithFilterNeighbor(func(_, nb int) bool { return nb != 3 }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.False(t, res.Visited(3))
}

func TestDFS_HookAbort(t *testing.T) {
	stop := errors.New("stop")
	res, err := dfs.DFS(diamond(t), 0, dfs.WithOnVisit(func(v, _ int) error {
		if v == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 3}, res.Order)
}

func TestDFS_DeepChainNoRecursion(t *testing.T) {
	g, err := graph.Path(200000, 1, graph.WithDirected())
	require.NoError(t, err)
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, 200000)
	assert.Equal(t, 199999, res.Depth[199999])
}

func TestReachable(t *testing.T) {
	g := directed(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}})
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true}, dfs.Reachable(g, 1))
	assert.Equal(t, map[int]bool{3: true, 4: true}, dfs.Reachable(g, 3))
	assert.Equal(t, map[int]bool{4: true}, dfs.Reachable(g, 4))
	assert.Empty(t, dfs.Reachable(g, 9))
	assert.Empty(t, dfs.Reachable(nil, 0))
}

// TestReachable_MatchesBFS checks that both traversals reach the same vertex set.
func TestReachable_MatchesBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 25; trial++ {
		g, err := graph.Random(15, 0.12, 1, rng, graph.WithDirected())
		require.NoError(t, err)
		reach := dfs.Reachable(g, 0)
		hops := bfs.Distances(g, 0)
		require.Len(t, reach, len(hops), "trial %d", trial)
		for v := range hops {
			assert.True(t, reach[v])
		}
		res, err := dfs.DFS(g, 0)
		require.NoError(t, err)
		assert.Len(t, res.Order, len(reach))
	}
}
