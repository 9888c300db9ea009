// Package rodcut solves the rod-cutting problem bottom-up and returns the
// optimal revenue, the cut that achieves it and the full revenue table.
//
//	res, err := rodcut.Cut(4, []int{1, 5, 8, 9})
//	// res.Revenue == 10, res.Pieces == [2 2]
//
// Prices are 0-indexed in storage (prices[0] is the price of a piece of
// length 1) while lengths stay 1-indexed as in the usual problem statement.
package rodcut
