package harness

import (
	"math"
	"slices"

	"github.com/katalvlaran/optima/graph"
)

// The oracles below enumerate every candidate answer. They are exponential
// and only meant for the small instances of fixtures and generated cases.

// bruteRodCut tries every composition of length into pieces 1..len(prices).
func bruteRodCut(length int, prices []int) int {
	best, found := 0, false
	var rec func(rem, acc int)
	rec = func(rem, acc int) {
		if rem == 0 {
			if !found || acc > best {
				best, found = acc, true
			}
			return
		}
		for j := 1; j <= min(rem, len(prices)); j++ {
			rec(rem-j, acc+prices[j-1])
		}
	}
	rec(length, 0)

	return best
}

// bruteZeroOne enumerates every subset of items.
func bruteZeroOne(weights, values []int, capacity int) int {
	n := len(weights)
	best := 0
	for mask := 0; mask < 1<<n; mask++ {
		w, v := 0, 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				w += weights[i]
				v += values[i]
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}

	return best
}

// bruteUnbounded enumerates every vector of copy counts. Weights must be positive.
func bruteUnbounded(weights, values []int, capacity int) int {
	var rec func(i, rem int) int
	rec = func(i, rem int) int {
		if i == len(weights) {
			return 0
		}
		best := 0
		for c := 0; c*weights[i] <= rem; c++ {
			best = max(best, c*values[i]+rec(i+1, rem-c*weights[i]))
		}

		return best
	}

	return rec(0, capacity)
}

// bruteLDS returns the size of the largest strictly decreasing subset of seq.
func bruteLDS(seq []int) int {
	n := len(seq)
	best := 0
	for mask := 1; mask < 1<<n; mask++ {
		size, prev, ok := 0, 0, true
		for i := 0; i < n && ok; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			if size > 0 && seq[i] >= prev {
				ok = false
			}
			prev = seq[i]
			size++
		}
		if ok && size > best {
			best = size
		}
	}

	return best
}

// bruteLCS enumerates subsequences of the shorter string.
func bruteLCS(a, b []rune) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	best := 0
	for mask := 0; mask < 1<<len(a); mask++ {
		sub := make([]rune, 0, len(a))
		for i := range a {
			if mask&(1<<i) != 0 {
				sub = append(sub, a[i])
			}
		}
		if len(sub) > best && isSubsequence(sub, b) {
			best = len(sub)
		}
	}

	return best
}

func isSubsequence[T comparable](sub, seq []T) bool {
	k := 0
	for _, x := range seq {
		if k < len(sub) && sub[k] == x {
			k++
		}
	}

	return k == len(sub)
}

// bruteSeam walks every top-to-bottom path with column steps of at most one.
func bruteSeam(grid [][]float64) float64 {
	best := math.Inf(1)
	var rec func(row, col int, acc float64)
	rec = func(row, col int, acc float64) {
		acc += grid[row][col]
		if row == len(grid)-1 {
			best = math.Min(best, acc)
			return
		}
		for dc := -1; dc <= 1; dc++ {
			if c := col + dc; c >= 0 && c < len(grid[row+1]) {
				rec(row+1, c, acc)
			}
		}
	}
	for c := range grid[0] {
		rec(0, c, 0)
	}

	return best
}

// sortedRank is the reference answer for selection: sorted(a)[rank-1].
func sortedRank(a []int, rank int) int {
	return slices.Sorted(slices.Values(a))[rank-1]
}

// bellmanFord computes distances by repeated relaxation of every arc.
// Only reachable vertices appear in the result.
func bellmanFord(g graph.Graph, source int) map[int]float64 {
	n := g.Order()
	dist := make(map[int]float64)
	if source < 0 || source >= n {
		return dist
	}
	dist[source] = 0
	for round := 0; round < n-1; round++ {
		changed := false
		for u := 0; u < n; u++ {
			du, ok := dist[u]
			if !ok {
				continue
			}
			for _, arc := range g.Neighbors(u) {
				if dv, seen := dist[arc.To]; !seen || du+arc.Weight < dv {
					dist[arc.To] = du + arc.Weight
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return dist
}
