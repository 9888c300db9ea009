package dfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds hooks and limits for a traversal.
type Options struct {
	// OnVisit is called in pre-order, when a vertex is popped for the first
	// time. A non-nil error aborts the traversal.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops descending below this depth. 0 means no limit.
	MaxDepth int

	// FilterNeighbor can skip arcs by returning false.
	FilterNeighbor func(curr, neighbor int) bool

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits traversal depth; d < 0 is reported as ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips the arc curr→neighbor when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in pre-order.
	Order []int

	// Depth is the tree depth at which each vertex was first visited.
	Depth map[int]int

	// Parent maps each visited vertex to the vertex it was discovered from.
	// The source has no entry.
	Parent map[int]int
}

// Visited reports whether v was reached.
func (r *Result) Visited(v int) bool {
	_, ok := r.Depth[v]

	return ok
}
