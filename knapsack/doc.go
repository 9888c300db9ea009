// Package knapsack solves the 0/1 and unbounded knapsack problems with a
// bottom-up DP table and reconstructs the chosen items.
//
// Key features:
//   - ZeroOne: each item at most once.
//   - Unbounded: items may be reused; weights must be positive.
//   - FullTable mode: (n+1)x(W+1) table, value + item witness.
//   - RollingRow mode: a single row of W+1 cells, value only.
//
// Usage:
//
//	res, err := knapsack.ZeroOne([]int{2, 3, 4, 5}, []int{3, 4, 5, 6}, 5)
//	// res.Value == 7, res.Items == [0 1]
//
//	res, err = knapsack.Unbounded(w, v, 100,
//	    knapsack.WithMemoryMode(knapsack.RollingRow), knapsack.WithoutItems())
//
// Performance:
//
//   - Time:   O(n·W)
//   - Memory: O(n·W) (FullTable) or O(W) (RollingRow)
//
// Errors:
//   - ErrLengthMismatch      weights and values differ in length.
//   - ErrNegativeCapacity    capacity < 0.
//   - ErrBadWeight           negative weight, or zero weight for Unbounded.
//   - ErrItemsNeedFullTable  items requested with RollingRow.
package knapsack
