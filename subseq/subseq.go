package subseq

import "cmp"

// Result is a longest subsequence together with the DP table that produced it.
type Result[T any] struct {
	// Length is the length of the longest subsequence.
	Length int

	// Indices are the positions of the witness in the input, ascending.
	Indices []int

	// Values are the witness elements, Values[k] == seq[Indices[k]].
	Values []T

	// Ending[i] is the length of the longest subsequence ending at i.
	Ending []int
}

// LongestDecreasing returns a longest strictly decreasing subsequence of seq.
func LongestDecreasing[T cmp.Ordered](seq []T) Result[T] {
	return Longest(seq, func(a, b T) bool { return a > b })
}

// LongestIncreasing returns a longest strictly increasing subsequence of seq.
func LongestIncreasing[T cmp.Ordered](seq []T) Result[T] {
	return Longest(seq, func(a, b T) bool { return a < b })
}

// Longest returns a longest subsequence in which every element may precede the
// next according to before. before must be a strict order (irreflexive and
// transitive) for the result to be meaningful.
//
// Recurrence:
//
//	ending[i] = 1 + max(ending[j] for j < i with before(seq[j], seq[i])), default 1
//
// Candidates j are scanned from i-1 down to 0 and only a strictly longer chain
// replaces the current one, so the stored predecessor is the nearest j among
// the maximal ones. The witness ends at the leftmost index of maximal length.
//
// Complexity: O(n²) time, O(n) memory.
func Longest[T any](seq []T, before func(a, b T) bool) Result[T] {
	n := len(seq)
	res := Result[T]{Indices: make([]int, 0), Values: make([]T, 0), Ending: make([]int, n)}
	if n == 0 {
		return res
	}

	prev := make([]int, n)
	end := 0
	for i := 0; i < n; i++ {
		res.Ending[i], prev[i] = 1, -1
		for j := i - 1; j >= 0; j-- {
			if before(seq[j], seq[i]) && res.Ending[j]+1 > res.Ending[i] {
				res.Ending[i], prev[i] = res.Ending[j]+1, j
			}
		}
		if res.Ending[i] > res.Ending[end] {
			end = i
		}
	}

	res.Length = res.Ending[end]
	res.Indices = make([]int, res.Length)
	res.Values = make([]T, res.Length)
	for k, i := res.Length-1, end; k >= 0; k, i = k-1, prev[i] {
		res.Indices[k] = i
		res.Values[k] = seq[i]
	}

	return res
}
