// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
	"fmt"
)

// MergeSort sorts a ascending. See MergeSortFunc.
func MergeSort[T cmp.Ordered](a []T, opts ...Option) error {
	return MergeSortFunc(a, cmp.Compare[T], opts...)
}

// MergeSortFunc sorts a according to cmp by divide and conquer:
//
//	sort(low, high):
//	  if low >= high: return
//	  mid = (low+high)/2
//	  sort(low, mid); sort(mid+1, high)
//	  merge(low, mid, high)
//
// The merge takes the left head on ties, which makes the sort stable.
// A single scratch buffer of len(a) is allocated up front; each merge uses
// its first high-low+1 slots.
//
// Complexity:
//
//	Time  = O(n·log n) in all cases
//	Space = O(n) buffer + O(log n) call frames
func MergeSortFunc[T any](a []T, cmp func(x, y T) int, opts ...Option) error {
	s, err := newSorter(a, cmp, opts)
	if err != nil {
		return err
	}
	defer s.finish()

	buf := make([]T, len(a))

	return s.mergeSort(buf, 0, len(a)-1, 0)
}

// mergeSort sorts a[low..high] inclusive.
func (s *sorter[T]) mergeSort(buf []T, low, high, depth int) error {
	if low >= high {
		return nil
	}
	if err := s.enter(depth); err != nil {
		return err
	}

	mid := low + (high-low)/2 // (low+high)/2 without overflow
	if err := s.mergeSort(buf, low, mid, depth+1); err != nil {
		return err
	}
	if err := s.mergeSort(buf, mid+1, high, depth+1); err != nil {
		return err
	}
	s.merge(buf, low, mid, high)

	return nil
}

// merge combines the sorted runs a[low..mid] and a[mid+1..high] into one
// sorted run a[low..high], using buf[0:high-low+1] as temporary storage.
func (s *sorter[T]) merge(buf []T, low, mid, high int) {
	tmp := buf[:high-low+1]
	left, right, k := low, mid+1, 0

	// 1. Take the smaller head while both runs have elements; ties go left.
	for left <= mid && right <= high {
		if s.compare(s.a[left], s.a[right]) <= 0 {
			tmp[k] = s.a[left]
			left++
		} else {
			tmp[k] = s.a[right]
			right++
		}
		k++
	}

	// 2. Append whichever run is left over, verbatim.
	k += copy(tmp[k:], s.a[left:mid+1])
	copy(tmp[k:], s.a[right:high+1])

	// 3. Copy the merged run back over the original range.
	for k = range tmp {
		s.set(low+k, tmp[k])
	}
}

// Merge combines the adjacent sorted runs a[low..mid] and a[mid+1..high]
// (inclusive bounds) into one sorted run a[low..high], stable.
// An empty right run (mid == high) is allowed and leaves a unchanged.
//
// Errors:
//   - ErrNilInput, ErrNilCompare
//   - ErrBadRange unless 0 <= low <= mid <= high < len(a)
//
// Complexity: O(high-low+1) time and space.
func Merge[T any](a []T, low, mid, high int, cmp func(x, y T) int) error {
	s, err := newSorter(a, cmp, nil)
	if err != nil {
		return err
	}
	if !validRange(len(a), low, high) || mid < low || mid > high {
		return fmt.Errorf("sorting: Merge(%d, %d, %d) on len %d: %w", low, mid, high, len(a), ErrBadRange)
	}

	s.merge(make([]T, high-low+1), low, mid, high)

	return nil
}
