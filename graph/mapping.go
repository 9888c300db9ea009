package graph

// Mapping adapts a plain neighbor map (vertex → adjacent vertices) to Graph.
// Every arc has weight 1. The order is one past the largest vertex that
// appears as a key or as a neighbor; negative ids are ignored.
type Mapping map[int][]int

// Order returns 1 + the largest vertex id mentioned in the map.
func (m Mapping) Order() int {
	n := 0
	for u, vs := range m {
		if u >= n {
			n = u + 1
		}
		for _, v := range vs {
			if v >= n {
				n = v + 1
			}
		}
	}

	return n
}

// Neighbors converts m[v] to unit-weight arcs.
func (m Mapping) Neighbors(v int) []Arc {
	vs, ok := m[v]
	if !ok || v < 0 {
		return nil
	}
	out := make([]Arc, 0, len(vs))
	for _, u := range vs {
		if u < 0 {
			continue
		}
		out = append(out, Arc{To: u, Weight: 1})
	}

	return out
}
