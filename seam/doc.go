// Package seam finds minimum-cost vertical paths through a grid of
// non-negative weights and uses them for seam carving.
//
// What
//
//   - MinPath: one cell per row, each step moving at most one column, with
//     the minimum total weight. Cumulative exposes the DP cost table.
//   - Remove: delete one cell per row along a path.
//   - EnergyRGB: horizontal Sobel energy of an RGB raster.
//   - Carve: repeat energy → MinPath → Remove.
//
// Tie-breaking
//
//	The path ends at the leftmost minimum of the last row. Walking upward the
//	straight-up parent wins ties, then the left one, then the right one, so
//	equal-cost grids always yield the same path.
//
// Degenerate grids
//
//	A single row gives its leftmost minimal cell. A single column gives the
//	straight column.
//
// Complexity
//
//   - Time:   O(rows·cols) per MinPath; O(n·rows·cols) for Carve.
//   - Memory: O(rows·cols).
//
// Image decoding and encoding are left to the caller; the package works on
// plain slices.
package seam
