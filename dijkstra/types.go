package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative arc weight was met during relaxation.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates that an Option was given an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex that was not reached.
	ErrNoPath = errors.New("dijkstra: no path to vertex")

	// ErrNoPredecessors is returned by PathTo when the run did not record predecessors.
	ErrNoPredecessors = errors.New("dijkstra: predecessors not recorded (use WithReturnPath)")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, Result.Prev is filled and PathTo works.
// MaxDistance      – vertices whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – arcs with weight ≥ this threshold are treated as impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap, no impassable
// threshold and no predecessor map.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// A negative or NaN value is recorded and reported as ErrOptionViolation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%v)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which arcs are skipped.
// A zero, negative or NaN threshold is reported as ErrOptionViolation.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%v)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// Result holds shortest distances from Source.
//
// Dist contains exactly the vertices reached; an absent key means the
// vertex is unreachable (or beyond MaxDistance). Prev is nil unless the
// run was configured with WithReturnPath; Prev[v] == u means the chosen
// shortest path to v arrives through u. The source has no Prev entry.
type Result struct {
	Source int
	Dist   map[int]float64
	Prev   map[int]int
}

// PathTo rebuilds the source→dest vertex sequence from Prev.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	if r.Prev == nil {
		return nil, ErrNoPredecessors
	}
	path := []int{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
