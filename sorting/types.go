// SPDX-License-Identifier: MIT

// Package sorting defines the sentinel errors, diagnostics and functional
// options shared by every sort in this package.
package sorting

import (
	"errors"
)

var (
	// ErrNilInput is returned when a nil slice is passed to a sort.
	// Empty and single-element slices are valid and left unchanged.
	ErrNilInput = errors.New("sorting: input slice is nil")

	// ErrNilCompare is returned when a Func variant receives a nil comparator.
	ErrNilCompare = errors.New("sorting: compare function is nil")

	// ErrBadRange indicates that low/mid/high bounds passed to Merge or
	// Partition do not describe a valid range of the slice.
	ErrBadRange = errors.New("sorting: range out of bounds")

	// ErrDepthExceeded indicates that a recursive sort went deeper than the
	// limit configured with WithMaxDepth.
	ErrDepthExceeded = errors.New("sorting: recursion depth exceeded")
)

// unlimitedDepth disables the recursion bound.
const unlimitedDepth = -1

// Stats collects diagnostics of a single sort call.
type Stats struct {
	// Comparisons counts calls to the comparator.
	Comparisons int

	// Swaps counts exchanges of two elements. Self-swaps are never performed.
	Swaps int

	// Writes counts single-element stores other than swaps: shifts and key
	// placement in InsertionSortShift, buffer copy-back in MergeSort.
	Writes int

	// Passes counts full outer passes: bubble passes and selection scans.
	Passes int

	// MaxDepth is the deepest recursion level reached (top call = 0).
	// Always 0 for the iterative sorts.
	MaxDepth int
}

// Option configures optional behavior of a sort call.
type Option func(*Options)

// Options holds the configurable parameters of a sort call.
type Options struct {
	// Stats, if non-nil, receives a copy of the call diagnostics on return,
	// including when the call fails with ErrDepthExceeded.
	Stats *Stats

	// OnSwap, if non-nil, is invoked after each swap of positions i and j.
	OnSwap func(i, j int)

	// MaxDepth, if non-negative, limits recursion of BubbleSortRecursive,
	// MergeSort and QuickSort. A limit of 0 allows only the top call.
	// Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with no stats sink, no hook and no
// recursion limit.
func DefaultOptions() Options {
	return Options{
		Stats:    nil,
		OnSwap:   nil,
		MaxDepth: unlimitedDepth,
	}
}

// WithStats returns an Option that stores the call diagnostics into s.
// Passing nil has no effect.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// WithOnSwap returns an Option that installs fn as a swap hook.
func WithOnSwap(fn func(i, j int)) Option {
	return func(o *Options) {
		o.OnSwap = fn
	}
}

// WithMaxDepth returns an Option that bounds recursion depth to limit.
// Use -1 to remove the bound. Panics on limit < -1.
func WithMaxDepth(limit int) Option {
	if limit < unlimitedDepth {
		panic("sorting: WithMaxDepth: limit must be >= -1")
	}

	return func(o *Options) {
		o.MaxDepth = limit
	}
}
