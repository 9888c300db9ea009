package seam

import (
	"fmt"
	"math"
)

// Cumulative validates grid and returns its cost table:
//
//	cost[0][j] = grid[0][j]
//	cost[i][j] = grid[i][j] + min(cost[i-1][j'] for j' in {j-1, j, j+1} ∩ columns)
func Cumulative(grid [][]float64) ([][]float64, error) {
	if err := validate(grid); err != nil {
		return nil, err
	}
	rows, cols := len(grid), len(grid[0])
	cost := make([][]float64, rows)
	cost[0] = append([]float64(nil), grid[0]...)
	for i := 1; i < rows; i++ {
		cost[i] = make([]float64, cols)
		up := cost[i-1]
		for j := 0; j < cols; j++ {
			best := up[j]
			if j > 0 && up[j-1] < best {
				best = up[j-1]
			}
			if j+1 < cols && up[j+1] < best {
				best = up[j+1]
			}
			cost[i][j] = grid[i][j] + best
		}
	}

	return cost, nil
}

// MinPath returns a minimum-cost top-to-bottom path through grid and its cost.
//
// The path holds one Point per row, ordered from row 0 down, with adjacent
// columns differing by at most 1. It ends in the leftmost minimal cell of the
// last row. Walking upward, among equal-cost parents the straight-up cell is
// preferred, then the left one, then the right one.
//
// Complexity: O(rows·cols) time and memory.
func MinPath(grid [][]float64) ([]Point, float64, error) {
	cost, err := Cumulative(grid)
	if err != nil {
		return nil, 0, err
	}
	rows, cols := len(cost), len(cost[0])

	last := cost[rows-1]
	col := 0
	for j := 1; j < cols; j++ {
		if last[j] < last[col] {
			col = j
		}
	}
	total := last[col]

	path := make([]Point, rows)
	path[rows-1] = Point{Col: col, Row: rows - 1}
	for i := rows - 1; i > 0; i-- {
		up := cost[i-1]
		next := col
		for _, c := range [2]int{col - 1, col + 1} {
			if c >= 0 && c < cols && up[c] < up[next] {
				next = c
			}
		}
		col = next
		path[i-1] = Point{Col: col, Row: i - 1}
	}

	return path, total, nil
}

func validate(grid [][]float64) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return ErrEmptyGrid
	}
	cols := len(grid[0])
	for i, row := range grid {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), cols)
		}
		for j, w := range row {
			if w < 0 || math.IsNaN(w) {
				return fmt.Errorf("%w: cell (%d,%d)=%v", ErrNegativeWeight, j, i, w)
			}
		}
	}

	return nil
}
