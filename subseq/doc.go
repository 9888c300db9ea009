// Package subseq finds longest monotone subsequences with the quadratic DP
// and reconstructs a witness from a predecessor slice.
//
// LongestDecreasing and LongestIncreasing cover the ordered cases; Longest
// accepts any strict order. All three are pure and deterministic:
//
//	r := subseq.LongestDecreasing([]int{8, 7, 3, 6, 2, 6})
//	// r.Length == 4, r.Values == [8 7 6 2]
package subseq
