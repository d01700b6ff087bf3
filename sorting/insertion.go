// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
)

// InsertionSort sorts a ascending in place by adjacent swaps.
// See InsertionSortFunc.
func InsertionSort[T cmp.Ordered](a []T, opts ...Option) error {
	return InsertionSortFunc(a, cmp.Compare[T], opts...)
}

// InsertionSortFunc sorts a in place according to cmp, growing a sorted
// prefix one element at a time (swap formulation):
//
//	for i = 0..n-1:
//	  j = i
//	  while j > 0 and a[j-1] > a[j]: swap(a[j-1], a[j]); j--
//
// Each new element bubbles left one swap at a time until it meets an
// element that is not greater. Stable.
//
// Complexity:
//
//	Time  = O(n) best (sorted input, inner loop never swaps), O(n²) worst
//	Space = O(1)
//	Swaps = number of inversions in the input
func InsertionSortFunc[T any](a []T, cmp func(x, y T) int, opts ...Option) error {
	s, err := newSorter(a, cmp, opts)
	if err != nil {
		return err
	}
	defer s.finish()

	var i, j int
	for i = 0; i < len(a); i++ {
		for j = i; j > 0 && s.greater(j-1, j); j-- {
			s.swap(j-1, j)
		}
	}

	return nil
}

// InsertionSortShift sorts a ascending in place by shifting and inserting a
// key. See InsertionSortShiftFunc.
func InsertionSortShift[T cmp.Ordered](a []T, opts ...Option) error {
	return InsertionSortShiftFunc(a, cmp.Compare[T], opts...)
}

// InsertionSortShiftFunc sorts a in place according to cmp (key
// formulation):
//
//	for i = 1..n-1:
//	  key = a[i]; j = i-1
//	  while j >= 0 and a[j] > key: a[j+1] = a[j]; j--
//	  a[j+1] = key
//
// One shift is a single store where the swap variant needs two, so large
// displacements cost fewer writes. Final order is identical to
// InsertionSortFunc. Stable.
//
// Complexity:
//
//	Time   = O(n) best, O(n²) worst
//	Space  = O(1)
//	Writes = inversions + number of keys that moved
func InsertionSortShiftFunc[T any](a []T, cmp func(x, y T) int, opts ...Option) error {
	s, err := newSorter(a, cmp, opts)
	if err != nil {
		return err
	}
	defer s.finish()

	var i, j int
	var key T
	for i = 1; i < len(a); i++ {
		key = a[i]
		for j = i - 1; j >= 0 && s.compare(a[j], key) > 0; j-- {
			s.set(j+1, a[j]) // shift right
		}
		if j+1 != i {
			s.set(j+1, key) // drop key into the vacated slot
		}
	}

	return nil
}
