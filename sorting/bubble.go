// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
)

// BubbleSort sorts a ascending in place by repeatedly swapping adjacent
// out-of-order pairs. See BubbleSortFunc.
func BubbleSort[T cmp.Ordered](a []T, opts ...Option) error {
	return BubbleSortFunc(a, cmp.Compare[T], opts...)
}

// BubbleSortFunc sorts a in place according to cmp.
//
// Algorithm:
//  1. For pass i = 0..n-2:
//     for j = 0..n-i-2: if a[j] > a[j+1], swap them.
//  2. If a pass performs no swap, the slice is sorted: stop early.
//
// After pass i the largest i+1 elements sit in their final positions.
// Swaps happen only on strict ">" so equal elements keep their order (stable).
//
// Complexity:
//
//	Time  = O(n) best (one swap-free pass), O(n²) average and worst
//	Space = O(1)
func BubbleSortFunc[T any](a []T, cmp func(x, y T) int, opts ...Option) error {
	s, err := newSorter(a, cmp, opts)
	if err != nil {
		return err
	}
	defer s.finish()

	n := len(a)
	var i, j int
	var swapped bool
	for i = 0; i < n-1; i++ {
		s.stats.Passes++
		swapped = false
		for j = 0; j < n-i-1; j++ {
			if s.greater(j, j+1) {
				s.swap(j, j+1)
				swapped = true
			}
		}
		if !swapped {
			break // no swap in a full pass: already sorted
		}
	}

	return nil
}

// BubbleSortRecursive is the recursive form of BubbleSort. See
// BubbleSortRecursiveFunc.
func BubbleSortRecursive[T cmp.Ordered](a []T, opts ...Option) error {
	return BubbleSortRecursiveFunc(a, cmp.Compare[T], opts...)
}

// BubbleSortRecursiveFunc sorts a in place according to cmp, one pass per
// call:
//  1. Base case: n <= 1, return.
//  2. One forward pass of adjacent swaps over indices 0..n-2, which bubbles
//     the maximum of a[0:n] into a[n-1].
//  3. Recurse on the first n-1 elements.
//
// There is no early exit, so exactly n-1 passes always run.
//
// Complexity:
//
//	Time  = O(n²) in all cases
//	Space = O(n) call frames (recursion depth n-2)
func BubbleSortRecursiveFunc[T any](a []T, cmp func(x, y T) int, opts ...Option) error {
	s, err := newSorter(a, cmp, opts)
	if err != nil {
		return err
	}
	defer s.finish()

	return s.bubbleRecursive(len(a), 0)
}

// bubbleRecursive runs one pass over a[0:n] and recurses on a[0:n-1].
func (s *sorter[T]) bubbleRecursive(n, depth int) error {
	if n <= 1 {
		return nil
	}
	if err := s.enter(depth); err != nil {
		return err
	}

	s.stats.Passes++
	for j := 0; j < n-1; j++ {
		if s.greater(j, j+1) {
			s.swap(j, j+1)
		}
	}

	return s.bubbleRecursive(n-1, depth+1)
}
