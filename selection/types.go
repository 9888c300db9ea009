package selection

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by the selection routines.
var (
	// ErrEmptyInput indicates selection on an empty slice.
	ErrEmptyInput = errors.New("selection: input is empty")

	// ErrRankOutOfRange indicates a rank outside [1, len(a)].
	ErrRankOutOfRange = errors.New("selection: rank out of range")

	// ErrCountOutOfRange indicates a count outside [0, len(a)].
	ErrCountOutOfRange = errors.New("selection: count out of range")
)

// Options controls the pivot randomness.
//
// Seed policy: Seed==0 ⇒ defaultRNGSeed. Rand, when set, wins over Seed and
// is advanced by the call; it must not be shared across goroutines.
type Options struct {
	Seed int64
	Rand *rand.Rand
}

// Option is a functional option for Select and friends.
type Option func(*Options)

// WithSeed fixes the pivot sequence.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand draws pivots from r. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}
