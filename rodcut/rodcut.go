package rodcut

import "fmt"

// Cut solves the rod-cutting problem for a rod of the given length.
//
// prices[j-1] is the price of a piece of length j, so pieces longer than
// len(prices) cannot be sold. A remainder that no piece fits (only possible
// when prices is empty) earns nothing and is left out of Pieces.
//
// Recurrence:
//
//	best[0] = 0
//	best[n] = max over j in [1, min(n, len(prices))] of prices[j-1] + best[n-j]
//
// Among equally good cuts the smallest first piece wins, so the witness is
// deterministic.
//
// Complexity: O(length · len(prices)) time, O(length) memory.
func Cut(length int, prices []int) (*Result, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}

	best := make([]int, length+1)
	first := make([]int, length+1) // first[n]: first piece of the optimal cut of n, 0 if none
	for n := 1; n <= length; n++ {
		limit := min(n, len(prices))
		for j := 1; j <= limit; j++ {
			cand := prices[j-1] + best[n-j]
			if first[n] == 0 || cand > best[n] {
				best[n], first[n] = cand, j
			}
		}
	}

	pieces := make([]int, 0)
	for n := length; n > 0 && first[n] > 0; n -= first[n] {
		pieces = append(pieces, first[n])
	}

	return &Result{Revenue: best[length], Pieces: pieces, Best: best}, nil
}
