// SPDX-License-Identifier: MIT

package stack

import (
	"cmp"
)

// SortIterative sorts s so that the largest value is on top, without
// recursion. See SortIterativeFunc.
func SortIterative[T cmp.Ordered](s LIFO[T], opts ...Option) error {
	return SortIterativeFunc(s, cmp.Compare[T], opts...)
}

// SortIterativeFunc sorts s according to cmp using one auxiliary Stack:
//
//	while s not empty:
//	  v = pop(s)
//	  while aux not empty and peek(aux) < v: push(s, pop(aux))
//	  push(aux, v)
//	while aux not empty: push(s, pop(aux))
//
// aux stays ordered with its smallest value on top, so draining it back
// leaves the greatest value on top of s. Same final order as SortFunc,
// O(n²) time, O(n) heap space and constant call depth.
func SortIterativeFunc[T any](s LIFO[T], cmp func(x, y T) int, opts ...Option) error {
	w, err := newSorter(s, cmp, opts)
	if err != nil {
		return err
	}
	defer w.finish()

	aux := New[T]()
	var v, top T
	for !s.IsEmpty() {
		if v, err = w.pop(s); err != nil {
			return err
		}
		for !aux.IsEmpty() {
			if top, err = w.peek(aux); err != nil {
				return err
			}
			w.stats.Comparisons++
			if w.cmp(top, v) >= 0 {
				break
			}
			if top, err = w.pop(aux); err != nil {
				return err
			}
			w.push(s, top)
		}
		w.push(aux, v)
	}

	for !aux.IsEmpty() {
		if v, err = w.pop(aux); err != nil {
			return err
		}
		w.push(s, v)
	}

	return nil
}
