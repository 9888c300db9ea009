package knapsack

import "fmt"

// ZeroOne solves the 0/1 knapsack problem: every item is taken at most once.
//
// Recurrence (items 1-indexed, storage 0-indexed):
//
//	best[i][w] = best[i-1][w]                                      if weight[i] > w
//	best[i][w] = max(best[i-1][w], best[i-1][w-weight[i]]+value[i]) otherwise
//
// Backtracking prefers leaving an item out when both branches tie.
//
// Complexity: O(n·W) time; O(n·W) memory in FullTable, O(W) in RollingRow.
func ZeroOne(weights, values []int, capacity int, opts ...Option) (*Result, error) {
	return solve(weights, values, capacity, false, opts)
}

// Unbounded solves the unbounded knapsack problem: items may be reused.
// The include branch reads best[i][w-weight[i]] (the current row) instead
// of the previous one. Weights must be strictly positive.
func Unbounded(weights, values []int, capacity int, opts ...Option) (*Result, error) {
	return solve(weights, values, capacity, true, opts)
}

func solve(weights, values []int, capacity int, unbounded bool, opts []Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validate(weights, values, capacity, unbounded); err != nil {
		return nil, err
	}
	if o.ReturnItems && o.MemoryMode != FullTable {
		return nil, ErrItemsNeedFullTable
	}

	if o.MemoryMode == RollingRow {
		return &Result{Value: rolling(weights, values, capacity, unbounded)}, nil
	}

	table := fullTable(weights, values, capacity, unbounded)
	n := len(weights)
	res := &Result{Value: table[n][capacity]}
	if o.ReturnItems {
		res.Counts = backtrack(table, weights, values, capacity, unbounded)
		res.Items = make([]int, 0)
		for i, c := range res.Counts {
			for ; c > 0; c-- {
				res.Items = append(res.Items, i)
				res.Weight += weights[i]
			}
		}
	}

	return res, nil
}

func validate(weights, values []int, capacity int, unbounded bool) error {
	if len(weights) != len(values) {
		return fmt.Errorf("%w: %d weights, %d values", ErrLengthMismatch, len(weights), len(values))
	}
	if capacity < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	for i, w := range weights {
		if w < 0 || (unbounded && w == 0) {
			return fmt.Errorf("%w: item %d has weight %d", ErrBadWeight, i, w)
		}
	}

	return nil
}

// fullTable fills best[i][w] for i in 0..n, w in 0..capacity.
func fullTable(weights, values []int, capacity int, unbounded bool) [][]int {
	n := len(weights)
	best := make([][]int, n+1)
	for i := range best {
		best[i] = make([]int, capacity+1)
	}
	for i := 1; i <= n; i++ {
		wi, vi := weights[i-1], values[i-1]
		src := best[i-1]
		if unbounded {
			src = best[i]
		}
		for w := 0; w <= capacity; w++ {
			best[i][w] = best[i-1][w]
			if wi <= w {
				best[i][w] = max(best[i][w], src[w-wi]+vi)
			}
		}
	}

	return best
}

// rolling computes the same optimum on one row. The 0/1 variant walks
// capacities downwards so each item is read from the previous row's values.
func rolling(weights, values []int, capacity int, unbounded bool) int {
	row := make([]int, capacity+1)
	for i, wi := range weights {
		vi := values[i]
		if unbounded {
			for w := wi; w <= capacity; w++ {
				row[w] = max(row[w], row[w-wi]+vi)
			}
			continue
		}
		for w := capacity; w >= wi; w-- {
			row[w] = max(row[w], row[w-wi]+vi)
		}
	}

	return row[capacity]
}

// backtrack walks the table from (n, capacity) and returns per-item counts.
// An item is taken only when excluding it cannot reproduce the cell value.
func backtrack(best [][]int, weights, values []int, capacity int, unbounded bool) []int {
	n := len(weights)
	counts := make([]int, n)
	i, w := n, capacity
	for i > 0 {
		if best[i][w] == best[i-1][w] {
			i--
			continue
		}
		counts[i-1]++
		w -= weights[i-1]
		if !unbounded {
			i--
		}
	}

	return counts
}
