package lcs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optima/lcs"
)

func TestStrings_Classic(t *testing.T) {
	n, s := lcs.Strings("ABCBDAB", "BDCABA")
	assert.Equal(t, 4, n)
	assert.Equal(t, "BCBA", s)

	n, s = lcs.Strings("AGGTAB", "GXTXAYB")
	assert.Equal(t, 4, n)
	assert.Equal(t, "GTAB", s)
}

func TestStrings_Edges(t *testing.T) {
	n, s := lcs.Strings("", "abc")
	assert.Zero(t, n)
	assert.Empty(t, s)

	n, _ = lcs.Strings("abc", "")
	assert.Zero(t, n)

	n, s = lcs.Strings("abc", "xyz")
	assert.Zero(t, n)
	assert.Empty(t, s)

	n, s = lcs.Strings("héllo", "hallo wörld")
	assert.Equal(t, 4, n)
	assert.Equal(t, "hllo", s)
}

func TestTable(t *testing.T) {
	table := lcs.Table([]byte("ab"), []byte("b"))
	assert.Equal(t, [][]int{{0, 0}, {0, 0}, {0, 1}}, table)
}

// bruteLCS checks every subsequence of a against b.
func bruteLCS(a, b []int) int {
	best := 0
	for mask := 0; mask < 1<<len(a); mask++ {
		sub := make([]int, 0, len(a))
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

func isSubsequence(sub, of []int) bool {
	k := 0
	for _, x := range of {
		if k < len(sub) && sub[k] == x {
			k++
		}
	}

	return k == len(sub)
}

func TestLCS_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	gen := func() []int {
		s := make([]int, rng.Intn(11))
		for i := range s {
			s[i] = rng.Intn(4)
		}
		return s
	}
	for trial := 0; trial < 300; trial++ {
		a, b := gen(), gen()
		want := bruteLCS(a, b)
		r := lcs.LCS(a, b)
		require.Equal(t, want, r.Length, "a=%v b=%v", a, b)
		assert.Equal(t, want, lcs.Length(a, b))
		assert.Equal(t, want, lcs.Length(b, a))

		for k, v := range r.Values {
			assert.Equal(t, v, a[r.IndicesA[k]])
			assert.Equal(t, v, b[r.IndicesB[k]])
			if k > 0 {
				assert.Less(t, r.IndicesA[k-1], r.IndicesA[k])
				assert.Less(t, r.IndicesB[k-1], r.IndicesB[k])
			}
		}
	}
}
