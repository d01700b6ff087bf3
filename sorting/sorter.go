// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"
)

// sorter carries the state of one sort call: the slice, the comparator,
// the resolved options and the diagnostics gathered so far.
type sorter[T any] struct {
	a     []T              // slice being sorted in place
	cmp   func(x, y T) int // comparator, never nil
	opts  Options          // resolved options
	stats Stats            // diagnostics, published by finish
}

// newSorter validates the inputs and resolves opts over DefaultOptions.
func newSorter[T any](a []T, cmp func(x, y T) int, opts []Option) (*sorter[T], error) {
	// 1. Validate inputs
	if a == nil {
		return nil, ErrNilInput
	}
	if cmp == nil {
		return nil, ErrNilCompare
	}

	// 2. Apply options in order; last wins
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return &sorter[T]{a: a, cmp: cmp, opts: o}, nil
}

// finish publishes the diagnostics to the configured sink, if any.
func (s *sorter[T]) finish() {
	if s.opts.Stats != nil {
		*s.opts.Stats = s.stats
	}
}

// greater reports whether a[i] > a[j].
func (s *sorter[T]) greater(i, j int) bool {
	s.stats.Comparisons++

	return s.cmp(s.a[i], s.a[j]) > 0
}

// compare compares two values, counting the call.
func (s *sorter[T]) compare(x, y T) int {
	s.stats.Comparisons++

	return s.cmp(x, y)
}

// swap exchanges a[i] and a[j] and fires the OnSwap hook.
func (s *sorter[T]) swap(i, j int) {
	s.a[i], s.a[j] = s.a[j], s.a[i]
	s.stats.Swaps++
	if s.opts.OnSwap != nil {
		s.opts.OnSwap(i, j)
	}
}

// set stores v at a[i], counting a write.
func (s *sorter[T]) set(i int, v T) {
	s.a[i] = v
	s.stats.Writes++
}

// enter records that recursion reached depth and enforces MaxDepth.
func (s *sorter[T]) enter(depth int) error {
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}
	if s.opts.MaxDepth >= 0 && depth > s.opts.MaxDepth {
		return fmt.Errorf("sorting: depth %d > limit %d: %w", depth, s.opts.MaxDepth, ErrDepthExceeded)
	}

	return nil
}

// validRange reports whether 0 <= low <= high < n.
func validRange(n, low, high int) bool {
	return low >= 0 && low <= high && high < n
}
