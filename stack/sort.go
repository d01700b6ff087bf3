// SPDX-License-Identifier: MIT

package stack

import (
	"cmp"
	"fmt"
)

// sorter carries the state of one stack sort call.
type sorter[T any] struct {
	s     LIFO[T]          // stack being sorted
	cmp   func(x, y T) int // comparator, never nil
	opts  Options          // resolved options
	stats Stats            // diagnostics, published by finish
}

// newSorter validates the inputs and resolves opts over DefaultOptions.
func newSorter[T any](s LIFO[T], cmp func(x, y T) int, opts []Option) (*sorter[T], error) {
	if s == nil {
		return nil, ErrNilStack
	}
	if cmp == nil {
		return nil, ErrNilCompare
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &sorter[T]{s: s, cmp: cmp, opts: o}, nil
}

// finish publishes the diagnostics to the configured sink, if any.
func (w *sorter[T]) finish() {
	if w.opts.Stats != nil {
		*w.opts.Stats = w.stats
	}
}

// enter records that recursion reached depth and enforces MaxDepth.
func (w *sorter[T]) enter(depth int) error {
	if depth > w.stats.MaxDepth {
		w.stats.MaxDepth = depth
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return fmt.Errorf("stack: depth %d > limit %d: %w", depth, w.opts.MaxDepth, ErrDepthExceeded)
	}

	return nil
}

// push pushes v onto l, counting it.
func (w *sorter[T]) push(l LIFO[T], v T) {
	l.Push(v)
	w.stats.Pushes++
}

// pop pops from l on a path already guarded by IsEmpty.
func (w *sorter[T]) pop(l LIFO[T]) (T, error) {
	v, err := l.Pop()
	if err != nil {
		return v, fmt.Errorf("stack: guarded Pop failed: %w: %w", ErrInvariantViolation, err)
	}
	w.stats.Pops++

	return v, nil
}

// peek peeks at l on a path already guarded by IsEmpty.
func (w *sorter[T]) peek(l LIFO[T]) (T, error) {
	v, err := l.Peek()
	if err != nil {
		return v, fmt.Errorf("stack: guarded Peek failed: %w: %w", ErrInvariantViolation, err)
	}

	return v, nil
}

// Sort sorts s so that the largest value is on top and popping yields
// descending order. See SortFunc.
func Sort[T cmp.Ordered](s LIFO[T], opts ...Option) error {
	return SortFunc(s, cmp.Compare[T], opts...)
}

// SortFunc sorts s according to cmp using only Push, Pop, Peek and IsEmpty,
// with the recursion itself as the only auxiliary storage.
// After the call the top of s is the greatest value.
//
// The recursion depth equals the number of elements; bound it with
// WithMaxDepth or use SortIterativeFunc for large stacks. When the call
// fails with ErrDepthExceeded every element is pushed back onto s.
func SortFunc[T any](s LIFO[T], cmp func(x, y T) int, opts ...Option) error {
	w, err := newSorter(s, cmp, opts)
	if err != nil {
		return err
	}
	defer w.finish()

	return w.sortStack(0)
}

// sortStack pops the top, sorts the rest, then inserts the popped value.
func (w *sorter[T]) sortStack(depth int) error {
	if err := w.enter(depth); err != nil {
		return err
	}
	if w.s.IsEmpty() {
		return nil
	}

	v, err := w.pop(w.s)
	if err != nil {
		return err
	}
	if err = w.sortStack(depth + 1); err != nil {
		w.push(w.s, v) // give v back so no element is lost

		return err
	}

	return w.insert(v, depth+1)
}

// insert places v into the sorted stack s, keeping the greatest on top.
func (w *sorter[T]) insert(v T, depth int) error {
	if err := w.enter(depth); err != nil {
		w.push(w.s, v)

		return err
	}

	// 1. Empty stack or top <= v: v belongs on top.
	if w.s.IsEmpty() {
		w.push(w.s, v)

		return nil
	}
	top, err := w.peek(w.s)
	if err != nil {
		return err
	}
	w.stats.Comparisons++
	if w.cmp(top, v) <= 0 {
		w.push(w.s, v)

		return nil
	}

	// 2. Set the greater top aside, insert below it, restore it.
	t, err := w.pop(w.s)
	if err != nil {
		return err
	}
	err = w.insert(v, depth+1)
	w.push(w.s, t)

	return err
}
