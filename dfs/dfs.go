package dfs

import (
	"fmt"

	"github.com/katalvlaran/optima/graph"
)

// frame is a stack entry: a vertex, the depth it was pushed at and the
// vertex it was pushed from (-1 for the source).
type frame struct {
	v, depth, parent int
}

// DFS walks g depth-first from source with an explicit stack, so deep graphs
// cannot overflow the goroutine stack. Neighbors are pushed in reverse so the
// first reported neighbor is explored first.
//
// A source outside 0..g.Order()-1 yields an empty Result and no error.
func DFS(g graph.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{
		Order:  make([]int, 0),
		Depth:  make(map[int]int),
		Parent: make(map[int]int),
	}
	if source < 0 || source >= g.Order() {
		return res, nil
	}

	stack := []frame{{v: source, depth: 0, parent: -1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if res.Visited(top.v) {
			continue
		}
		res.Depth[top.v] = top.depth
		if top.parent >= 0 {
			res.Parent[top.v] = top.parent
		}
		res.Order = append(res.Order, top.v)
		if err := o.OnVisit(top.v, top.depth); err != nil {
			return res, fmt.Errorf("dfs: OnVisit hook for %d: %w", top.v, err)
		}
		if o.MaxDepth > 0 && top.depth >= o.MaxDepth {
			continue
		}

		nbs := g.Neighbors(top.v)
		for i := len(nbs) - 1; i >= 0; i-- {
			to := nbs[i].To
			if res.Visited(to) || !o.FilterNeighbor(top.v, to) {
				continue
			}
			stack = append(stack, frame{v: to, depth: top.depth + 1, parent: top.v})
		}
	}

	return res, nil
}

// Reachable returns the set of vertices reachable from source, source included.
// A nil graph or a source outside the graph gives an empty set.
func Reachable(g graph.Graph, source int) map[int]bool {
	seen := make(map[int]bool)
	if g == nil || source < 0 || source >= g.Order() {
		return seen
	}
	stack := []int{source}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[v] {
			continue
		}
		seen[v] = true
		for _, arc := range g.Neighbors(v) {
			if !seen[arc.To] {
				stack = append(stack, arc.To)
			}
		}
	}

	return seen
}
