package selection

import "math/rand"

// defaultRNGSeed replaces a zero seed, so calls without options repeat
// the same pivot sequence.
const defaultRNGSeed int64 = 1

// rngFromSeed builds the pivot source for seed, mapping 0 to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// pivotIndex returns a uniformly random index in [lo, hi].
func pivotIndex(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
