package harness

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/optima/dijkstra"
	"github.com/katalvlaran/optima/graph"
	"github.com/katalvlaran/optima/knapsack"
	"github.com/katalvlaran/optima/lcs"
	"github.com/katalvlaran/optima/rodcut"
	"github.com/katalvlaran/optima/seam"
	"github.com/katalvlaran/optima/selection"
	"github.com/katalvlaran/optima/subseq"
)

const epsilon = 1e-9

// errMismatch marks a wrong optimal value; other check errors describe
// an invalid witness or a kernel failure.
var errMismatch = errors.New("value mismatch")

// Run executes the selected kernels against suite and, when enabled, against
// generated instances. A nil suite loads cfg.Fixtures or, without one, the
// builtin suite; a nil logger discards output.
//
// Failing cases are recorded in the Report; the returned error is reserved
// for invalid configuration or unreadable fixtures.
func Run(cfg Config, suite *Suite, logger *log.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if suite == nil {
		if cfg.Fixtures != "" {
			s, err := LoadSuite(cfg.Fixtures)
			if err != nil {
				return nil, err
			}
			suite = s
		} else {
			suite = BuiltinSuite(cfg.LargeTests)
		}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rep := &Report{RunID: uuid.New(), Seed: seed, Started: time.Now()}
	r := &runner{log: logger, report: rep}
	logger.Info("harness run", "id", rep.RunID, "fixtures", suite.Size(), "seed", seed)

	var generated *Suite
	if cfg.GenerateRandom && cfg.RandomTests > 0 {
		generated = Generate(cfg, seed)
	}
	for _, k := range cfg.selected() {
		r.kernel(k, suite, false)
		if generated != nil {
			r.kernel(k, generated, true)
		}
	}

	rep.Elapsed = time.Since(rep.Started)
	logger.Info("harness done", "cases", len(rep.Results), "failed", rep.Failed(), "elapsed", rep.Elapsed)

	return rep, nil
}

type runner struct {
	log    *log.Logger
	report *Report
}

// kernel dispatches one kernel's cases of s.
func (r *runner) kernel(k string, s *Suite, random bool) {
	switch k {
	case KernelRodCut:
		runCases(r, k, s.RodCut, random, func(c RodCutCase) string { return c.Name }, checkRodCut)
	case KernelKnapsack:
		runCases(r, k, s.Knapsack, random, func(c KnapsackCase) string { return c.Name }, checkZeroOne)
	case KernelUnbounded:
		runCases(r, k, s.Unbounded, random, func(c KnapsackCase) string { return c.Name }, checkUnbounded)
	case KernelLDS:
		runCases(r, k, s.LDS, random, func(c SeqCase) string { return c.Name }, checkLDS)
	case KernelLCS:
		runCases(r, k, s.LCS, random, func(c LCSCase) string { return c.Name }, checkLCS)
	case KernelSelect:
		runCases(r, k, s.Select, random, func(c SelectCase) string { return c.Name }, checkSelect)
	case KernelKLargest:
		runCases(r, k, s.KLargest, random, func(c KLargestCase) string { return c.Name }, checkKLargest)
	case KernelSeam:
		runCases(r, k, s.Seam, random, func(c SeamCase) string { return c.Name }, checkSeam)
	case KernelShortest:
		runCases(r, k, s.Shortest, random, func(c GraphCase) string { return c.Name }, checkShortest)
	}
}

func runCases[C any](r *runner, kernel string, cases []C, random bool, name func(C) string, check func(C) error) {
	for i, c := range cases {
		res := CaseResult{Kernel: kernel, Name: name(c), Random: random}
		if res.Name == "" {
			res.Name = fmt.Sprintf("#%d", i+1)
		}
		start := time.Now()
		err := check(c)
		res.Elapsed = time.Since(start)
		res.OK = err == nil
		if err != nil {
			res.Detail = err.Error()
			r.log.Warn("case failed", "kernel", kernel, "case", res.Name, "ok", false, "detail", res.Detail)
		} else {
			r.log.Debug("case passed", "kernel", kernel, "case", res.Name, "ok", true, "elapsed", res.Elapsed)
		}
		r.report.Results = append(r.report.Results, res)
	}
}

// expect compares got with the fixture answer, or the oracle when want is nil.
func expect(got int, want *int, oracle func() int) error {
	var w int
	if want != nil {
		w = *want
	} else {
		w = oracle()
	}
	if got != w {
		return fmt.Errorf("%w: got %d, want %d", errMismatch, got, w)
	}

	return nil
}

func checkRodCut(c RodCutCase) error {
	res, err := rodcut.Cut(c.Length, c.Prices)
	if err != nil {
		return err
	}
	if err = expect(res.Revenue, c.Want, func() int { return bruteRodCut(c.Length, c.Prices) }); err != nil {
		return err
	}
	total, revenue := 0, 0
	for _, p := range res.Pieces {
		if p < 1 || p > len(c.Prices) {
			return fmt.Errorf("piece %d has no price", p)
		}
		total += p
		revenue += c.Prices[p-1]
	}
	if revenue != res.Revenue {
		return fmt.Errorf("pieces %v earn %d, reported %d", res.Pieces, revenue, res.Revenue)
	}
	if total > c.Length || (len(c.Prices) > 0 && total != c.Length) {
		return fmt.Errorf("pieces %v sum to %d, rod has length %d", res.Pieces, total, c.Length)
	}

	return nil
}

func checkZeroOne(c KnapsackCase) error {
	res, err := knapsack.ZeroOne(c.Weights, c.Values, c.Capacity)
	if err != nil {
		return err
	}
	if err = expect(res.Value, c.Want, func() int { return bruteZeroOne(c.Weights, c.Values, c.Capacity) }); err != nil {
		return err
	}
	for _, n := range res.Counts {
		if n > 1 {
			return fmt.Errorf("item taken %d times in 0/1 knapsack", n)
		}
	}

	return checkKnapsackWitness(c, res)
}

func checkUnbounded(c KnapsackCase) error {
	res, err := knapsack.Unbounded(c.Weights, c.Values, c.Capacity)
	if err != nil {
		return err
	}
	if err = expect(res.Value, c.Want, func() int { return bruteUnbounded(c.Weights, c.Values, c.Capacity) }); err != nil {
		return err
	}

	return checkKnapsackWitness(c, res)
}

func checkKnapsackWitness(c KnapsackCase, res *knapsack.Result) error {
	weight, value := 0, 0
	for _, i := range res.Items {
		if i < 0 || i >= len(c.Weights) {
			return fmt.Errorf("item index %d out of range", i)
		}
		weight += c.Weights[i]
		value += c.Values[i]
	}
	if weight > c.Capacity || weight != res.Weight {
		return fmt.Errorf("items %v weigh %d, reported %d, capacity %d", res.Items, weight, res.Weight, c.Capacity)
	}
	if value != res.Value {
		return fmt.Errorf("items %v are worth %d, reported %d", res.Items, value, res.Value)
	}

	return nil
}

func checkLDS(c SeqCase) error {
	res := subseq.LongestDecreasing(c.Seq)
	if err := expect(res.Length, c.Want, func() int { return bruteLDS(c.Seq) }); err != nil {
		return err
	}
	if len(res.Indices) != res.Length || len(res.Values) != res.Length {
		return fmt.Errorf("witness has %d indices and %d values, length %d", len(res.Indices), len(res.Values), res.Length)
	}
	for k, i := range res.Indices {
		if c.Seq[i] != res.Values[k] {
			return fmt.Errorf("value %d does not match seq[%d]", res.Values[k], i)
		}
		if k > 0 && (i <= res.Indices[k-1] || res.Values[k] >= res.Values[k-1]) {
			return fmt.Errorf("witness %v is not strictly decreasing", res.Values)
		}
	}

	return nil
}

func checkLCS(c LCSCase) error {
	a, b := []rune(c.A), []rune(c.B)
	res := lcs.LCS(a, b)
	if err := expect(res.Length, c.Want, func() int { return bruteLCS(a, b) }); err != nil {
		return err
	}
	if len(res.Values) != res.Length || len(res.IndicesA) != res.Length || len(res.IndicesB) != res.Length {
		return fmt.Errorf("witness %q does not have length %d", string(res.Values), res.Length)
	}
	for k := range res.Values {
		if a[res.IndicesA[k]] != res.Values[k] || b[res.IndicesB[k]] != res.Values[k] {
			return fmt.Errorf("witness %q is misplaced at position %d", string(res.Values), k)
		}
		if k > 0 && (res.IndicesA[k] <= res.IndicesA[k-1] || res.IndicesB[k] <= res.IndicesB[k-1]) {
			return fmt.Errorf("witness indices are not increasing at position %d", k)
		}
	}

	return nil
}

func checkSelect(c SelectCase) error {
	in := slices.Clone(c.Values)
	got, err := selection.SelectCopy(c.Values, c.Rank)
	if err != nil {
		return err
	}
	if !slices.Equal(in, c.Values) {
		return errors.New("SelectCopy modified its input")
	}

	return expect(got, c.Want, func() int { return sortedRank(c.Values, c.Rank) })
}

func checkKLargest(c KLargestCase) error {
	a := slices.Clone(c.Values)
	top, err := selection.KLargest(a, c.K)
	if err != nil {
		return err
	}
	got := slices.Sorted(slices.Values(top))
	sorted := slices.Sorted(slices.Values(c.Values))
	want := sorted[len(sorted)-c.K:]
	if !slices.Equal(got, want) {
		return fmt.Errorf("%w: got %v, want %v", errMismatch, got, want)
	}
	if !slices.Equal(slices.Sorted(slices.Values(a)), sorted) {
		return errors.New("KLargest lost or duplicated elements while reordering")
	}

	return nil
}

func checkSeam(c SeamCase) error {
	path, cost, err := seam.MinPath(c.Grid)
	if err != nil {
		return err
	}
	var want float64
	if c.Want != nil {
		want = *c.Want
	} else {
		want = bruteSeam(c.Grid)
	}
	if math.Abs(cost-want) > epsilon {
		return fmt.Errorf("%w: got %g, want %g", errMismatch, cost, want)
	}
	if len(path) != len(c.Grid) {
		return fmt.Errorf("path has %d cells for %d rows", len(path), len(c.Grid))
	}
	sum := 0.0
	for r, p := range path {
		if p.Row != r || p.Col < 0 || p.Col >= len(c.Grid[r]) {
			return fmt.Errorf("path cell %d is %+v", r, p)
		}
		if r > 0 && (p.Col-path[r-1].Col > 1 || path[r-1].Col-p.Col > 1) {
			return fmt.Errorf("path jumps from column %d to %d at row %d", path[r-1].Col, p.Col, r)
		}
		sum += c.Grid[r][p.Col]
	}
	if math.Abs(sum-cost) > epsilon {
		return fmt.Errorf("path costs %g, reported %g", sum, cost)
	}

	return nil
}

func checkShortest(c GraphCase) error {
	g, err := c.Build()
	if err != nil {
		return err
	}
	res, err := dijkstra.Dijkstra(g, c.Source, dijkstra.WithReturnPath())
	if err != nil {
		return err
	}
	want := c.Want
	if want == nil {
		want = bellmanFord(g, c.Source)
	}
	if len(res.Dist) != len(want) {
		return fmt.Errorf("%w: reached %d vertices, want %d", errMismatch, len(res.Dist), len(want))
	}
	for v, d := range want {
		got, ok := res.Dist[v]
		if !ok || math.Abs(got-d) > epsilon {
			return fmt.Errorf("%w: dist[%d] = %g (reached %t), want %g", errMismatch, v, got, ok, d)
		}
		path, err := res.PathTo(v)
		if err != nil {
			return err
		}
		if path[0] != c.Source || path[len(path)-1] != v {
			return fmt.Errorf("path %v does not join %d and %d", path, c.Source, v)
		}
		if cost, ok := pathCost(g, path); !ok || math.Abs(cost-d) > epsilon {
			return fmt.Errorf("path %v costs %g (valid %t), want %g", path, cost, ok, d)
		}
	}

	return nil
}

// pathCost sums the cheapest arc between consecutive vertices; ok is false
// when some step has no arc.
func pathCost(g graph.Graph, path []int) (float64, bool) {
	total := 0.0
	for i := 1; i < len(path); i++ {
		best, found := math.Inf(1), false
		for _, arc := range g.Neighbors(path[i-1]) {
			if arc.To == path[i] && arc.Weight < best {
				best, found = arc.Weight, true
			}
		}
		if !found {
			return 0, false
		}
		total += best
	}

	return total, true
}
