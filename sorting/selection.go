// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
)

// SelectionSort sorts a ascending in place. See SelectionSortFunc.
func SelectionSort[T cmp.Ordered](a []T, opts ...Option) error {
	return SelectionSortFunc(a, cmp.Compare[T], opts...)
}

// SelectionSortFunc sorts a in place according to cmp:
//
//	for i = 0..n-2:
//	  min = index of the smallest element in a[i..n-1]
//	  swap(a[i], a[min])
//
// Exactly n-1 scans run regardless of input order. The long-distance swap
// can carry an element past its equals, so the sort is NOT stable.
// When min == i no swap is performed.
//
// Complexity:
//
//	Time  = O(n²) in all cases, n(n-1)/2 comparisons
//	Space = O(1)
//	Swaps = at most n-1
func SelectionSortFunc[T any](a []T, cmp func(x, y T) int, opts ...Option) error {
	s, err := newSorter(a, cmp, opts)
	if err != nil {
		return err
	}
	defer s.finish()

	n := len(a)
	var i, j, minIdx int
	for i = 0; i < n-1; i++ {
		s.stats.Passes++
		minIdx = i
		for j = i + 1; j < n; j++ {
			if s.greater(minIdx, j) {
				minIdx = j
			}
		}
		if minIdx != i {
			s.swap(i, minIdx)
		}
	}

	return nil
}
