// SPDX-License-Identifier: MIT

// Package stack defines the sentinel errors, diagnostics and functional
// options of the stack sorts.
package stack

import (
	"errors"
)

var (
	// ErrNilStack is returned when a nil LIFO is passed to a sort.
	ErrNilStack = errors.New("stack: stack is nil")

	// ErrNilCompare is returned when a Func variant receives a nil comparator.
	ErrNilCompare = errors.New("stack: compare function is nil")

	// ErrEmptyStack is returned by Pop and Peek on an empty Stack.
	ErrEmptyStack = errors.New("stack: stack is empty")

	// ErrInvariantViolation indicates a Pop or Peek failed on a path the sort
	// had already guarded with IsEmpty.
	ErrInvariantViolation = errors.New("stack: invariant violation")

	// ErrDepthExceeded indicates Sort recursed deeper than WithMaxDepth.
	ErrDepthExceeded = errors.New("stack: recursion depth exceeded")
)

// unlimitedDepth disables the recursion bound.
const unlimitedDepth = -1

// Stats collects diagnostics of a single sort call.
type Stats struct {
	Comparisons int // comparator calls
	Pushes      int // Push calls on any stack involved
	Pops        int // successful Pop calls on any stack involved
	MaxDepth    int // deepest recursion level, top call = 0
}

// Option configures optional behavior of a sort call.
type Option func(*Options)

// Options holds the configurable parameters of a sort call.
type Options struct {
	// Stats, if non-nil, receives a copy of the diagnostics on return.
	Stats *Stats

	// MaxDepth, if non-negative, limits the recursion of Sort.
	// SortIterative never recurses and ignores it. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with no stats sink and no depth limit.
func DefaultOptions() Options {
	return Options{
		Stats:    nil,
		MaxDepth: unlimitedDepth,
	}
}

// WithStats returns an Option that stores the call diagnostics into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// WithMaxDepth returns an Option that bounds recursion depth to limit.
// Use -1 to remove the bound. Panics on limit < -1.
func WithMaxDepth(limit int) Option {
	if limit < unlimitedDepth {
		panic("stack: WithMaxDepth: limit must be >= -1")
	}

	return func(o *Options) {
		o.MaxDepth = limit
	}
}
