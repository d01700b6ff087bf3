// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
	"fmt"
	"slices"
)

// QuickSort sorts a ascending in place. See QuickSortFunc.
func QuickSort[T cmp.Ordered](a []T, opts ...Option) error {
	return QuickSortFunc(a, cmp.Compare[T], opts...)
}

// QuickSortFunc sorts a in place according to cmp:
//
//	sort(low, high):
//	  if low >= high: return
//	  p = partition(low, high)   // pivot = a[low]
//	  sort(low, p-1); sort(p+1, high)
//
// The pivot is always the first element of the range, so already sorted or
// reverse sorted input degrades to O(n²) with recursion depth n-1; bound it
// with WithMaxDepth when input order is not trusted. NOT stable.
//
// Complexity:
//
//	Time  = O(n·log n) average, O(n²) worst
//	Space = O(log n) average, O(n) worst call frames
func QuickSortFunc[T any](a []T, cmp func(x, y T) int, opts ...Option) error {
	s, err := newSorter(a, cmp, opts)
	if err != nil {
		return err
	}
	defer s.finish()

	return s.quickSort(0, len(a)-1, 0)
}

// quickSort sorts a[low..high] inclusive.
func (s *sorter[T]) quickSort(low, high, depth int) error {
	if low >= high {
		return nil
	}
	if err := s.enter(depth); err != nil {
		return err
	}

	p := s.partition(low, high)
	if err := s.quickSort(low, p-1, depth+1); err != nil {
		return err
	}

	return s.quickSort(p+1, high, depth+1)
}

// partition rearranges a[low..high] around pivot = a[low] and returns the
// pivot's settled index p.
//
//  1. i scans right from low+1 past elements <= pivot.
//  2. j scans left from high past elements > pivot; it cannot pass low,
//     because a[low] is the pivot itself.
//  3. While i < j, a[i] > pivot and a[j] <= pivot: swap them and resume both
//     scans from the new inner positions.
//  4. Once the scans cross, a[j] is the last element <= pivot: swap the
//     pivot into j.
//
// Afterwards a[low..p-1] <= pivot, a[p] == pivot, a[p+1..high] > pivot.
func (s *sorter[T]) partition(low, high int) int {
	pivot := s.a[low]
	i, j := low+1, high
	for {
		for i <= high && s.compare(s.a[i], pivot) <= 0 {
			i++
		}
		for j > low && s.compare(s.a[j], pivot) > 0 {
			j--
		}
		if i >= j {
			break
		}
		s.swap(i, j)
	}
	if j != low {
		s.swap(low, j)
	}

	return j
}

// Partition rearranges a[low..high] (inclusive) around the pivot a[low] and
// returns the pivot's settled index p: every element left of p is <= the
// pivot, every element right of p is > the pivot, a[p] equals the pivot.
//
// Errors:
//   - ErrNilInput, ErrNilCompare
//   - ErrBadRange unless 0 <= low <= high < len(a)
//
// Complexity: O(high-low+1) time, O(1) space.
func Partition[T any](a []T, low, high int, cmp func(x, y T) int) (int, error) {
	s, err := newSorter(a, cmp, nil)
	if err != nil {
		return 0, err
	}
	if !validRange(len(a), low, high) {
		return 0, fmt.Errorf("sorting: Partition(%d, %d) on len %d: %w", low, high, len(a), ErrBadRange)
	}

	return s.partition(low, high), nil
}

// QuickSorted returns a sorted copy of a, leaving a untouched.
// The result has the same length and elements as a.
func QuickSorted[T cmp.Ordered](a []T, opts ...Option) ([]T, error) {
	if a == nil {
		return nil, ErrNilInput
	}
	out := slices.Clone(a)
	if err := QuickSort(out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}
