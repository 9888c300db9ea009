package rodcut_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optima/rodcut"
)

func TestCut_Classic(t *testing.T) {
	res, err := rodcut.Cut(4, []int{1, 5, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, 10, res.Revenue)
	assert.Equal(t, []int{2, 2}, res.Pieces)
	assert.Equal(t, []int{0, 1, 5, 8, 10}, res.Best)
}

func TestCut_TextbookTable(t *testing.T) {
	prices := []int{1, 5, 8, 9, 10, 17, 17, 20, 24, 30}
	want := []int{0, 1, 5, 8, 10, 13, 17, 18, 22, 25, 30}
	res, err := rodcut.Cut(10, prices)
	require.NoError(t, err)
	assert.Equal(t, want, res.Best)
	assert.Equal(t, []int{10}, res.Pieces)

	res, err = rodcut.Cut(7, prices)
	require.NoError(t, err)
	assert.Equal(t, 18, res.Revenue)
	assert.Equal(t, []int{1, 6}, res.Pieces, "smallest first piece wins ties")
}

func TestCut_Edges(t *testing.T) {
	_, err := rodcut.Cut(-1, []int{1})
	assert.ErrorIs(t, err, rodcut.ErrNegativeLength)

	res, err := rodcut.Cut(0, []int{3})
	require.NoError(t, err)
	assert.Zero(t, res.Revenue)
	assert.Empty(t, res.Pieces)

	res, err = rodcut.Cut(5, nil)
	require.NoError(t, err)
	assert.Zero(t, res.Revenue)
	assert.Empty(t, res.Pieces)

	// rod longer than the price table
	res, err = rodcut.Cut(7, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 14, res.Revenue)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1}, res.Pieces)
}

// bruteForce enumerates every composition of n into pieces of allowed length.
func bruteForce(n int, prices []int) int {
	if n == 0 {
		return 0
	}
	best := 0
	for j := 1; j <= n && j <= len(prices); j++ {
		best = max(best, prices[j-1]+bruteForce(n-j, prices))
	}

	return best
}

func TestCut_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(13)
		prices := make([]int, 1+rng.Intn(10))
		for i := range prices {
			prices[i] = 1 + rng.Intn(30)
		}
		res, err := rodcut.Cut(n, prices)
		require.NoError(t, err)
		require.Equal(t, bruteForce(n, prices), res.Revenue, "n=%d prices=%v", n, prices)

		sum, value := 0, 0
		for _, p := range res.Pieces {
			sum += p
			value += prices[p-1]
		}
		assert.Equal(t, n, sum)
		assert.Equal(t, res.Revenue, value)
	}
}
