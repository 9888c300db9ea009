package seam

import "errors"

// Sentinel errors for grid validation and carving.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("seam: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("seam: all rows must have the same length")

	// ErrNegativeWeight indicates a negative or NaN cell weight.
	ErrNegativeWeight = errors.New("seam: cell weights must be non-negative numbers")

	// ErrBadPath indicates a path that does not fit the grid it is applied to.
	ErrBadPath = errors.New("seam: path does not match grid")

	// ErrTooManySeams indicates a seam count outside [0, width).
	ErrTooManySeams = errors.New("seam: seam count must be in [0, width)")
)

// Point is one cell of a path: Col is the column, Row the row.
type Point struct {
	Col, Row int
}
