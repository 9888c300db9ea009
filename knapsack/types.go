package knapsack

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by ZeroOne and Unbounded.
var (
	// ErrLengthMismatch indicates weights and values differ in length.
	ErrLengthMismatch = errors.New("knapsack: weights and values must have equal length")

	// ErrNegativeCapacity indicates a negative knapsack capacity.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrBadWeight indicates a negative weight, or a zero weight in the unbounded variant.
	ErrBadWeight = errors.New("knapsack: invalid item weight")

	// ErrItemsNeedFullTable indicates that the witness was requested with RollingRow.
	ErrItemsNeedFullTable = errors.New("knapsack: item reconstruction requires MemoryMode=FullTable")

	// ErrOptionViolation indicates an unknown MemoryMode.
	ErrOptionViolation = errors.New("knapsack: invalid option supplied")
)

// MemoryMode controls how the DP table is stored.
//
//   - FullTable: keep the entire (n+1)x(capacity+1) table.
//     Allows value + backtrace for the chosen items. Memory: O(n·W).
//
//   - RollingRow: keep one row of capacity+1 cells.
//     Memory: O(W), but the item set cannot be recovered.
type MemoryMode int

const (
	// FullTable stores all rows and supports item reconstruction.
	FullTable MemoryMode = iota

	// RollingRow keeps a single row; value only.
	RollingRow
)

// String returns the mode name.
func (m MemoryMode) String() string {
	switch m {
	case FullTable:
		return "full"
	case RollingRow:
		return "rolling"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// Options configures a knapsack run.
//
// Fields:
//   - MemoryMode:  FullTable (default) or RollingRow.
//   - ReturnItems: reconstruct the chosen items (default true).
//     Requires MemoryMode=FullTable.
type Options struct {
	MemoryMode  MemoryMode
	ReturnItems bool

	err error
}

// Option is a functional option for ZeroOne and Unbounded.
type Option func(*Options)

// DefaultOptions returns FullTable storage with item reconstruction.
func DefaultOptions() Options {
	return Options{MemoryMode: FullTable, ReturnItems: true}
}

// WithMemoryMode selects the table storage.
func WithMemoryMode(m MemoryMode) Option {
	return func(o *Options) {
		if m != FullTable && m != RollingRow {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, m)
			return
		}
		o.MemoryMode = m
	}
}

// WithoutItems skips witness reconstruction; only Value is filled.
func WithoutItems() Option {
	return func(o *Options) {
		o.ReturnItems = false
	}
}

// Result is the outcome of a knapsack run.
type Result struct {
	// Value is the optimal total value.
	Value int

	// Weight is the total weight of Items (0 when items were not requested).
	Weight int

	// Items lists 0-based indices of the chosen items in ascending order.
	// An item taken several times (unbounded variant) appears once per copy.
	Items []int

	// Counts[i] is how many copies of item i were taken.
	Counts []int
}
