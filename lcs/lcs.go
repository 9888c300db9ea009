package lcs

// Result is a longest common subsequence of two sequences.
type Result[T comparable] struct {
	// Length is the LCS length, Table[len(a)][len(b)].
	Length int

	// Values is one longest common subsequence.
	Values []T

	// IndicesA and IndicesB locate Values in a and b respectively.
	IndicesA []int
	IndicesB []int
}

// Table returns the full (len(a)+1)x(len(b)+1) LCS length table:
//
//	table[i][j] = table[i-1][j-1] + 1            if a[i-1] == b[j-1]
//	table[i][j] = max(table[i-1][j], table[i][j-1]) otherwise
func Table[T comparable](a, b []T) [][]int {
	n, m := len(a), len(b)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else {
				table[i][j] = max(table[i-1][j], table[i][j-1])
			}
		}
	}

	return table
}

// LCS returns a longest common subsequence of a and b with its positions.
//
// The backtrack starts at (len(a), len(b)). On a match it steps diagonally;
// otherwise it moves up (dropping a[i-1]) when table[i-1][j] >= table[i][j-1]
// and left otherwise, so the witness is deterministic.
//
// Complexity: O(n·m) time and memory.
func LCS[T comparable](a, b []T) Result[T] {
	table := Table(a, b)
	i, j := len(a), len(b)
	length := table[i][j]
	res := Result[T]{
		Length:   length,
		Values:   make([]T, length),
		IndicesA: make([]int, length),
		IndicesB: make([]int, length),
	}
	for k := length - 1; k >= 0; {
		switch {
		case a[i-1] == b[j-1]:
			res.Values[k], res.IndicesA[k], res.IndicesB[k] = a[i-1], i-1, j-1
			k--
			i--
			j--
		case table[i-1][j] >= table[i][j-1]:
			i--
		default:
			j--
		}
	}

	return res
}

// Length returns only the LCS length using two rolling rows over the
// shorter input. Memory: O(min(n, m)).
func Length[T comparable](a, b []T) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// Strings is LCS over the runes of two strings; the witness is returned as a string.
func Strings(a, b string) (int, string) {
	r := LCS([]rune(a), []rune(b))

	return r.Length, string(r.Values)
}
