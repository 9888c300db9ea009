package bfs

import (
	"errors"
	"fmt"
)

// Errors returned by BFS and Result.PathTo.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation wraps every rejected Option argument.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex that was not reached.
	ErrNoPath = errors.New("bfs: no path to vertex")
)

// Option adjusts Options. A bad argument is remembered and BFS returns it,
// wrapped in ErrOptionViolation, before touching the graph.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called when a vertex is discovered, with its depth.
	OnEnqueue func(v, depth int)

	// OnVisit is called when a vertex is dequeued. If it returns an error,
	// the traversal stops and BFS returns the error wrapped.
	OnVisit func(v, depth int) error

	// MaxDepth, when positive, is the deepest level that gets enqueued.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip arcs by returning false.
	// Called for each arc curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// first rejected option
	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithOnEnqueue registers a callback to run when a vertex is discovered.
func WithOnEnqueue(fn func(v, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit installs fn as the dequeue hook; a non-nil error ends the search.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
// Zero removes the limit and a negative d is rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative MaxDepth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor ignores the arc curr→neighbor whenever fn reports false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices in dequeue order.
//   - Depth: hop count from the source; only reached vertices are present.
//   - Parent: predecessor in the BFS tree; the source has no entry.
type Result struct {
	Source int
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs a fewest-hops path from the source to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
