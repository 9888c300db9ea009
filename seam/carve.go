package seam

import (
	"fmt"
	"math"
)

// sobelX is the horizontal 3x3 Sobel kernel.
var sobelX = [3][3]int{{1, 0, -1}, {2, 0, -2}, {1, 0, -1}}

// EnergyRGB turns an RGB raster (pix[row][col]) into a non-negative weight
// grid for MinPath. Each channel is filtered with the horizontal Sobel
// kernel, clamping coordinates at the border, and the absolute responses of
// the three channels are summed.
func EnergyRGB(pix [][][3]uint8) [][]float64 {
	rows := len(pix)
	out := make([][]float64, rows)
	for y := 0; y < rows; y++ {
		cols := len(pix[y])
		out[y] = make([]float64, cols)
		for x := 0; x < cols; x++ {
			var acc [3]int
			for ky := 0; ky < 3; ky++ {
				py := clamp(y+ky-1, rows-1)
				row := pix[py]
				for kx := 0; kx < 3; kx++ {
					k := sobelX[ky][kx]
					if k == 0 {
						continue
					}
					p := row[clamp(x+kx-1, len(row)-1)]
					for c := 0; c < 3; c++ {
						acc[c] += k * int(p[c])
					}
				}
			}
			out[y][x] = math.Abs(float64(acc[0])) + math.Abs(float64(acc[1])) + math.Abs(float64(acc[2]))
		}
	}

	return out
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}

	return v
}

// Remove deletes the cell at path[k] from row path[k].Row and returns the
// narrower raster. rows itself is left untouched.
func Remove[T any](rows [][]T, path []Point) ([][]T, error) {
	if len(path) != len(rows) {
		return nil, fmt.Errorf("%w: %d points for %d rows", ErrBadPath, len(path), len(rows))
	}
	out := make([][]T, len(rows))
	for _, p := range path {
		if p.Row < 0 || p.Row >= len(rows) || out[p.Row] != nil {
			return nil, fmt.Errorf("%w: bad row in %+v", ErrBadPath, p)
		}
		row := rows[p.Row]
		if p.Col < 0 || p.Col >= len(row) {
			return nil, fmt.Errorf("%w: column out of range in %+v", ErrBadPath, p)
		}
		nr := make([]T, 0, len(row)-1)
		nr = append(nr, row[:p.Col]...)
		out[p.Row] = append(nr, row[p.Col+1:]...)
	}

	return out, nil
}

// Carve removes n vertical seams from pix. Each round recomputes energy on
// the current raster, finds its MinPath and removes it.
func Carve[T any](pix [][]T, n int, energy func([][]T) [][]float64) ([][]T, error) {
	if len(pix) == 0 || len(pix[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if n < 0 || n >= len(pix[0]) {
		return nil, fmt.Errorf("%w: n=%d width=%d", ErrTooManySeams, n, len(pix[0]))
	}
	cur := pix
	for k := 0; k < n; k++ {
		path, _, err := MinPath(energy(cur))
		if err != nil {
			return nil, fmt.Errorf("seam %d: %w", k, err)
		}
		if cur, err = Remove(cur, path); err != nil {
			return nil, fmt.Errorf("seam %d: %w", k, err)
		}
	}

	return cur, nil
}
