package bfs

import (
	"fmt"

	"github.com/katalvlaran/optima/graph"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph graph.Graph
	opts  Options
	queue []queueItem
	head  int
	res   *Result
}

// BFS runs breadth-first search on g from source, applying any number of
// functional Options. Arc weights are ignored: every arc counts as one hop.
//
// A source outside 0..g.Order()-1 is not an error; the result is simply empty.
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// or any error returned by the OnVisit hook.
func BFS(g graph.Graph, source int, opts ...Option) (*Result, error) {
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

	n := g.Order()
	res := &Result{
		Source: source,
		Order:  make([]int, 0),
		Depth:  make(map[int]int),
		Parent: make(map[int]int),
	}
	if source < 0 || source >= n {
		return res, nil
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res:   res,
	}
	w.enqueue(source, 0, -1)

	return w.res, w.loop()
}

// Distances is the bare reachability contract: vertex → hop count for every
// vertex reachable from source. Unreachable vertices are absent.
func Distances(g graph.Graph, source int) map[int]int {
	if g == nil {
		return map[int]int{}
	}
	res, _ := BFS(g, source)

	return res.Depth
}

// enqueue records depth and parent, calls OnEnqueue and appends to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	if parent >= 0 {
		w.res.Parent[v] = parent
	}
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until it drains or a hook fails.
//
// Steps per iteration:
//  1. Dequeue the oldest vertex.
//  2. Record it in Order and run OnVisit.
//  3. Enqueue its unseen neighbors.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// 1) dequeue
		item := w.queue[w.head]
		w.head++

		// 2) visit
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		// 3) expand
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	// depth limit applies to the children, not to item itself
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, arc := range w.graph.Neighbors(item.v) {
		if !w.opts.FilterNeighbor(item.v, arc.To) {
			continue
		}
		// first discovery fixes depth and parent
		if _, seen := w.res.Depth[arc.To]; !seen {
			w.enqueue(arc.To, nextDepth, item.v)
		}
	}
}
