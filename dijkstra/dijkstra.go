package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/optima/graph"
)

// Dijkstra computes shortest distances from source to every vertex of g that
// can be reached from it, following arcs as reported by g.Neighbors.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//  3. A source outside 0..g.Order()-1 is not an error: the result is empty.
//
// Arc weights must be non-negative. The graph is not pre-scanned; the first
// negative weight met while relaxing aborts the run with ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g graph.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	n := g.Order()
	res := &Result{Source: source, Dist: make(map[int]float64)}
	if cfg.ReturnPath {
		res.Prev = make(map[int]int)
	}
	if source < 0 || source >= n {
		return res, nil
	}

	r := &runner{
		g:       g,
		options: cfg,
		res:     res,
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       graph.Graph
	options Options
	res     *Result
	visited []bool // distance finalized
	pq      nodePQ
}

// init seeds the heap with the source at distance 0.
func (r *runner) init(source int) {
	r.res.Dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})
}

// process pops the closest unsettled vertex until the heap drains or the
// frontier passes MaxDistance.
//
// Steps per iteration:
//  1. Pop the entry with the smallest distance.
//  2. Skip it if the vertex is settled or the entry is stale.
//  3. Stop once the frontier lies beyond MaxDistance.
//  4. Settle the vertex and relax its arcs.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) closest entry
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// 2) stale entry (lazy decrease-key)
		if r.visited[u] || item.dist > r.res.Dist[u] {
			continue
		}

		// 3) every remaining entry is at least as far
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) settle and relax
		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of the settled vertex u.
// Only a strictly shorter distance replaces the current one, so the
// predecessor recorded first wins among equal-cost paths.
//
// Steps per arc u→v:
//  1. Reject a negative weight.
//  2. Skip arcs at or above InfEdgeThreshold and settled targets.
//  3. Drop candidates beyond MaxDistance.
//  4. Record a strictly shorter distance, its predecessor, and push v.
func (r *runner) relax(u int) error {
	du := r.res.Dist[u]
	for _, arc := range r.g.Neighbors(u) {
		v, w := arc.To, arc.Weight

		// 1) non-negative weights only
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, u, v, w)
		}
		// 2) absent arc or final target
		if w >= r.options.InfEdgeThreshold || r.visited[v] {
			continue
		}

		// 3) outside the search radius
		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}

		// 4) strict improvement
		if cur, seen := r.res.Dist[v]; seen && nd >= cur {
			continue
		}
		r.res.Dist[v] = nd
		if r.res.Prev != nil {
			r.res.Prev[v] = u
		}
		heap.Push(&r.pq, nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and the distance it was pushed with.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by distance, then vertex id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
