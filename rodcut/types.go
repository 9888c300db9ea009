package rodcut

import "errors"

// ErrNegativeLength indicates a negative rod length.
var ErrNegativeLength = errors.New("rodcut: rod length must be non-negative")

// Result is the outcome of Cut.
type Result struct {
	// Revenue is the optimal total price, Best[length].
	Revenue int

	// Pieces lists the lengths of the optimal cut in cut order. Their sum
	// equals the rod length; it is empty for a zero-length rod.
	Pieces []int

	// Best[n] is the optimal revenue for a rod of length n, 0 ≤ n ≤ length.
	Best []int
}
