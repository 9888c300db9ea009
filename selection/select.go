package selection

import (
	"cmp"
	"fmt"
)

// SelectIndex reorders a in place so that a[q] holds the i-th smallest
// element (1-indexed) and returns q == i-1. Afterwards every element of
// a[:q] is ≤ a[q] and every element of a[q+1:] is ≥ a[q]; any other order
// is unspecified.
//
// Each round partitions a[lo:hi+1] Lomuto-style around a uniformly random
// pivot moved to hi, then continues only in the side holding rank i.
//
// Complexity: expected O(n) time, O(1) extra memory.
func SelectIndex[T cmp.Ordered](a []T, i int, opts ...Option) (int, error) {
	n := len(a)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if i < 1 || i > n {
		return 0, fmt.Errorf("%w: rank %d, length %d", ErrRankOutOfRange, i, n)
	}
	r := buildOptions(opts).rng()

	target := i - 1
	lo, hi := 0, n-1
	for lo < hi {
		p := pivotIndex(r, lo, hi)
		a[p], a[hi] = a[hi], a[p]
		q := partition(a, lo, hi)
		switch {
		case q == target:
			return q, nil
		case target < q:
			hi = q - 1
		default:
			lo = q + 1
		}
	}

	return target, nil
}

// partition moves elements smaller than the pivot a[hi] to the front of
// a[lo:hi+1], places the pivot after them and returns its index.
func partition[T cmp.Ordered](a []T, lo, hi int) int {
	pivot := a[hi]
	store := lo
	for j := lo; j < hi; j++ {
		if a[j] < pivot {
			a[store], a[j] = a[j], a[store]
			store++
		}
	}
	a[store], a[hi] = a[hi], a[store]

	return store
}

// Select returns the i-th smallest element of a (1-indexed). a is reordered in place.
func Select[T cmp.Ordered](a []T, i int, opts ...Option) (T, error) {
	q, err := SelectIndex(a, i, opts...)
	if err != nil {
		var zero T
		return zero, err
	}

	return a[q], nil
}

// SelectCopy is Select on a private copy; a keeps its order.
func SelectCopy[T cmp.Ordered](a []T, i int, opts ...Option) (T, error) {
	return Select(append([]T(nil), a...), i, opts...)
}

// KLargest reorders a and returns the sub-slice holding its k largest
// elements, in unspecified order. It selects rank n-k+1 and returns the
// upper partition a[n-k:].
//
// k == 0 gives an empty slice; a slice of length ≤ 1 is returned unchanged.
func KLargest[T cmp.Ordered](a []T, k int, opts ...Option) ([]T, error) {
	n := len(a)
	if k < 0 || k > n {
		return nil, fmt.Errorf("%w: k %d, length %d", ErrCountOutOfRange, k, n)
	}
	if k == 0 {
		return a[n:], nil
	}
	if n <= 1 {
		return a, nil
	}
	q, err := SelectIndex(a, n-k+1, opts...)
	if err != nil {
		return nil, err
	}

	return a[q:], nil
}

// KSmallest is the mirror of KLargest: it returns a[:k] after selecting rank k.
func KSmallest[T cmp.Ordered](a []T, k int, opts ...Option) ([]T, error) {
	n := len(a)
	if k < 0 || k > n {
		return nil, fmt.Errorf("%w: k %d, length %d", ErrCountOutOfRange, k, n)
	}
	if k == 0 {
		return a[:0], nil
	}
	if n <= 1 {
		return a, nil
	}
	q, err := SelectIndex(a, k, opts...)
	if err != nil {
		return nil, err
	}

	return a[:q+1], nil
}
