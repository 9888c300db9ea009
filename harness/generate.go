package harness

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/optima/graph"
)

// Generate builds cfg.RandomTests random instances for every selected kernel.
// Expected answers are left nil so that Run falls back to the oracles.
//
// Each kernel draws from its own source derived from seed, so restricting
// cfg.Kernels does not change the instances of the remaining kernels.
func Generate(cfg Config, seed int64) *Suite {
	s := &Suite{}
	for _, k := range cfg.selected() {
		rng := rand.New(rand.NewSource(seed + int64(slices.Index(Kernels(), k))))
		for i := 0; i < cfg.RandomTests; i++ {
			n := cfg.Lower + rng.Intn(cfg.Upper-cfg.Lower+1)
			name := fmt.Sprintf("random-%d/n=%d", i+1, n)
			switch k {
			case KernelRodCut:
				s.RodCut = append(s.RodCut, RodCutCase{Name: name, Length: n, Prices: ints(rng, n, 1, 3*n)})
			case KernelKnapsack:
				s.Knapsack = append(s.Knapsack, randomKnapsack(rng, name, n, 0))
			case KernelUnbounded:
				s.Unbounded = append(s.Unbounded, randomKnapsack(rng, name, n, 20))
			case KernelLDS:
				s.LDS = append(s.LDS, SeqCase{Name: name, Seq: ints(rng, n, 0, 9999)})
			case KernelLCS:
				s.LCS = append(s.LCS, LCSCase{Name: name, A: word(rng, n), B: word(rng, cfg.Lower+rng.Intn(cfg.Upper-cfg.Lower+1))})
			case KernelSelect:
				s.Select = append(s.Select, SelectCase{Name: name, Values: ints(rng, n, -50, 50), Rank: 1 + rng.Intn(n)})
			case KernelKLargest:
				s.KLargest = append(s.KLargest, KLargestCase{Name: name, Values: ints(rng, n, -50, 50), K: rng.Intn(n + 1)})
			case KernelSeam:
				s.Seam = append(s.Seam, randomSeam(rng, name, n))
			case KernelShortest:
				s.Shortest = append(s.Shortest, randomGraph(rng, name, n))
			}
		}
	}

	return s
}

// ints draws n integers uniformly from [lo, hi].
func ints(rng *rand.Rand, n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo+1)
	}

	return out
}

// word draws n letters from a four-letter alphabet so that common
// subsequences are likely.
func word(rng *rand.Rand, n int) string {
	const alphabet = "abcd"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return string(b)
}

// randomKnapsack draws capacity from [0, sum(weights)/2], further capped by
// maxCap when it is positive.
func randomKnapsack(rng *rand.Rand, name string, n, maxCap int) KnapsackCase {
	weights := ints(rng, n, 1, 10)
	total := 0
	for _, w := range weights {
		total += w
	}
	limit := total / 2
	if maxCap > 0 {
		limit = min(limit, maxCap)
	}

	return KnapsackCase{
		Name:     name,
		Weights:  weights,
		Values:   ints(rng, n, 1, 50),
		Capacity: rng.Intn(limit + 1),
	}
}

// randomSeam uses integral weights so that path costs compare exactly.
func randomSeam(rng *rand.Rand, name string, rows int) SeamCase {
	cols := 1 + rng.Intn(rows)
	grid := make([][]float64, rows)
	for r := range grid {
		grid[r] = make([]float64, cols)
		for c := range grid[r] {
			grid[r][c] = float64(rng.Intn(10))
		}
	}

	return SeamCase{Name: name, Grid: grid}
}

func randomGraph(rng *rand.Rand, name string, n int) GraphCase {
	directed := rng.Intn(2) == 0
	var opts []graph.Option
	if directed {
		opts = append(opts, graph.WithDirected())
	}
	// n ≥ 1 and p in [0, 1] are always valid.
	g, _ := graph.Random(n, 0.35, 9, rng, opts...)

	spec := GraphSpec{Vertices: n, Directed: directed}
	for u := 0; u < n; u++ {
		for _, arc := range g.Neighbors(u) {
			if directed || u < arc.To {
				spec.Edges = append(spec.Edges, []float64{float64(u), float64(arc.To), arc.Weight})
			}
		}
	}

	return GraphCase{Name: name, GraphSpec: spec, Source: rng.Intn(n)}
}
