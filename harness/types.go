package harness

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for harness configuration and fixtures.
var (
	// ErrUnknownKernel indicates a kernel name that the harness does not know.
	ErrUnknownKernel = errors.New("harness: unknown kernel")

	// ErrBadConfig indicates an invalid Config value.
	ErrBadConfig = errors.New("harness: invalid configuration")

	// ErrBadFixture indicates a fixture that cannot be turned into a kernel input.
	ErrBadFixture = errors.New("harness: invalid fixture")
)

// Kernel names accepted in Config.Kernels and used in CaseResult.Kernel.
const (
	KernelRodCut    = "rodcut"
	KernelKnapsack  = "knapsack"
	KernelUnbounded = "unbounded"
	KernelLDS       = "lds"
	KernelLCS       = "lcs"
	KernelSelect    = "select"
	KernelKLargest  = "klargest"
	KernelSeam      = "seam"
	KernelShortest  = "shortest"
)

// Kernels lists every kernel in the order Run executes them.
func Kernels() []string {
	return []string{
		KernelRodCut, KernelKnapsack, KernelUnbounded, KernelLDS, KernelLCS,
		KernelSelect, KernelKLargest, KernelSeam, KernelShortest,
	}
}

// CaseResult is the verdict for a single fixture or generated instance.
type CaseResult struct {
	Kernel  string
	Name    string
	Random  bool
	OK      bool
	Detail  string // mismatch or witness problem; empty when OK
	Elapsed time.Duration
}

// Report collects every CaseResult of one Run.
type Report struct {
	RunID   uuid.UUID
	Seed    int64 // effective seed of generated instances
	Started time.Time
	Elapsed time.Duration
	Results []CaseResult
}

// Failed returns the number of failing cases.
func (r *Report) Failed() int {
	n := 0
	for _, c := range r.Results {
		if !c.OK {
			n++
		}
	}

	return n
}

// KernelSummary aggregates results for one kernel.
type KernelSummary struct {
	Kernel string
	Passed int
	Failed int
}

// Summary returns per-kernel pass/fail counts in execution order.
func (r *Report) Summary() []KernelSummary {
	idx := make(map[string]int)
	var out []KernelSummary
	for _, c := range r.Results {
		i, ok := idx[c.Kernel]
		if !ok {
			i = len(out)
			idx[c.Kernel] = i
			out = append(out, KernelSummary{Kernel: c.Kernel})
		}
		if c.OK {
			out[i].Passed++
		} else {
			out[i].Failed++
		}
	}

	return out
}
