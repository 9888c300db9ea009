package seam_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optima/seam"
)

func TestMinPath_Small(t *testing.T) {
	grid := [][]float64{
		{3, 1, 4},
		{1, 5, 9},
		{2, 6, 5},
	}
	path, cost, err := seam.MinPath(grid)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cost)
	assert.Equal(t, []seam.Point{{1, 0}, {0, 1}, {0, 2}}, path)
}

func TestMinPath_TieOrder(t *testing.T) {
	zeros := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	path, cost, err := seam.MinPath(zeros)
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Equal(t, []seam.Point{{0, 0}, {0, 1}, {0, 2}}, path, "leftmost end, straight up")

	// left parent wins over right when both beat straight
	grid := [][]float64{
		{1, 5, 1},
		{9, 0, 9},
	}
	path, cost, err = seam.MinPath(grid)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cost)
	assert.Equal(t, []seam.Point{{0, 0}, {1, 1}}, path)
}

func TestMinPath_Degenerate(t *testing.T) {
	path, cost, err := seam.MinPath([][]float64{{4, 2, 7, 2}})
	require.NoError(t, err)
	assert.Equal(t, 2.0, cost)
	assert.Equal(t, []seam.Point{{1, 0}}, path)

	path, cost, err = seam.MinPath([][]float64{{1}, {2}, {3}})
	require.NoError(t, err)
	assert.Equal(t, 6.0, cost)
	assert.Equal(t, []seam.Point{{0, 0}, {0, 1}, {0, 2}}, path)
}

func TestMinPath_Errors(t *testing.T) {
	_, _, err := seam.MinPath(nil)
	assert.ErrorIs(t, err, seam.ErrEmptyGrid)
	_, _, err = seam.MinPath([][]float64{{}})
	assert.ErrorIs(t, err, seam.ErrEmptyGrid)
	_, _, err = seam.MinPath([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, seam.ErrNonRectangular)
	_, _, err = seam.MinPath([][]float64{{1, -2}})
	assert.ErrorIs(t, err, seam.ErrNegativeWeight)
	_, _, err = seam.MinPath([][]float64{{math.NaN()}})
	assert.ErrorIs(t, err, seam.ErrNegativeWeight)
}

func TestCumulative(t *testing.T) {
	cost, err := seam.Cumulative([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {4, 5}}, cost)
}

// bruteMinPath enumerates every admissible column sequence.
func bruteMinPath(grid [][]float64) float64 {
	cols := len(grid[0])
	var rec func(row, col int) float64
	rec = func(row, col int) float64 {
		if row == len(grid)-1 {
			return grid[row][col]
		}
		best := math.Inf(1)
		for d := -1; d <= 1; d++ {
			if c := col + d; c >= 0 && c < cols {
				best = math.Min(best, rec(row+1, c))
			}
		}
		return grid[row][col] + best
	}
	best := math.Inf(1)
	for c := 0; c < cols; c++ {
		best = math.Min(best, rec(0, c))
	}

	return best
}

func TestMinPath_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for trial := 0; trial < 200; trial++ {
		rows, cols := 1+rng.Intn(6), 1+rng.Intn(6)
		grid := make([][]float64, rows)
		for i := range grid {
			grid[i] = make([]float64, cols)
			for j := range grid[i] {
				grid[i][j] = float64(rng.Intn(10))
			}
		}
		path, cost, err := seam.MinPath(grid)
		require.NoError(t, err)
		require.Equal(t, bruteMinPath(grid), cost, "grid=%v", grid)

		require.Len(t, path, rows)
		sum := 0.0
		for i, p := range path {
			assert.Equal(t, i, p.Row)
			if i > 0 {
				assert.LessOrEqual(t, abs(p.Col-path[i-1].Col), 1)
			}
			sum += grid[p.Row][p.Col]
		}
		assert.Equal(t, cost, sum)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestRemove(t *testing.T) {
	rows := [][]string{{"a", "b", "c"}, {"d", "e", "f"}}
	out, err := seam.Remove(rows, []seam.Point{{2, 0}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"d", "f"}}, out)
	assert.Equal(t, []string{"a", "b", "c"}, rows[0], "input is not modified")

	_, err = seam.Remove(rows, []seam.Point{{0, 0}})
	assert.ErrorIs(t, err, seam.ErrBadPath)
	_, err = seam.Remove(rows, []seam.Point{{0, 0}, {3, 1}})
	assert.ErrorIs(t, err, seam.ErrBadPath)
	_, err = seam.Remove(rows, []seam.Point{{0, 0}, {0, 0}})
	assert.ErrorIs(t, err, seam.ErrBadPath)
}

func TestEnergyRGB(t *testing.T) {
	// a vertical black/white edge lights up the two columns next to it
	k, w := [3]uint8{}, [3]uint8{255, 255, 255}
	pix := [][][3]uint8{{k, k, w, w}, {k, k, w, w}}
	e := seam.EnergyRGB(pix)
	want := []float64{0, 3 * 4 * 255, 3 * 4 * 255, 0}
	assert.Equal(t, want, e[0])
	assert.Equal(t, want, e[1])

	flat := seam.EnergyRGB([][][3]uint8{{{9, 9, 9}}})
	assert.Equal(t, [][]float64{{0}}, flat)
}

func TestCarve(t *testing.T) {
	k, w := [3]uint8{}, [3]uint8{255, 255, 255}
	pix := [][][3]uint8{{k, k, k, w, w}, {k, k, k, w, w}, {k, k, k, w, w}}
	out, err := seam.Carve(pix, 2, seam.EnergyRGB)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, row := range out {
		assert.Equal(t, [][3]uint8{k, w, w}, row, "low-energy black columns are removed first")
	}

	_, err = seam.Carve(pix, 5, seam.EnergyRGB)
	assert.ErrorIs(t, err, seam.ErrTooManySeams)
	_, err = seam.Carve(pix, -1, seam.EnergyRGB)
	assert.ErrorIs(t, err, seam.ErrTooManySeams)
	_, err = seam.Carve([][][3]uint8{}, 1, seam.EnergyRGB)
	assert.ErrorIs(t, err, seam.ErrEmptyGrid)

	same, err := seam.Carve(pix, 0, seam.EnergyRGB)
	require.NoError(t, err)
	assert.Equal(t, pix, same)
}
