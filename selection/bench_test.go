package selection_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/optima/selection"
)

func BenchmarkSelect_Median100k(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	base := make([]int, 100000)
	for i := range base {
		base[i] = rng.Int()
	}
	work := make([]int, len(base))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, base)
		if _, err := selection.Select(work, len(work)/2); err != nil {
			b.Fatal(err)
		}
	}
}
