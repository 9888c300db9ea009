// Package selection implements randomized quickselect: the i-th smallest
// element of a slice in expected linear time, plus the k largest and k
// smallest elements as sub-slices.
//
// Mutation contract:
//
//	Select, SelectIndex, KLargest and KSmallest partition their input in
//	place; the caller must own the slice exclusively for the duration of the
//	call. The final order is only guaranteed around the selected position.
//	SelectCopy leaves the input untouched.
//
// Determinism:
//
//	Pivots come from math/rand. With the same seed (WithSeed; 0 means a fixed
//	default) or an identically seeded WithRand source, repeated calls on the
//	same input produce the same result and the same final order.
//
// Ranks are 1-indexed: Select(a, 1) is the minimum, Select(a, len(a)) the maximum.
//
//	v, err := selection.Select([]int{7, 14, 3, 19, 11, 2, 17, 8, 5, 13}, 4)
//	// v == 7
package selection
