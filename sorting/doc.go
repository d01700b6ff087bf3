// SPDX-License-Identifier: MIT

// Package sorting implements the classic comparison-based sorting family
// over Go slices: bubble, insertion, selection, merge and quick sort, plus
// the exported Partition and Merge steps the divide-and-conquer sorts are
// built from.
//
// What:
//
//   - BubbleSort:          adjacent swaps with early exit on a swap-free pass
//   - BubbleSortRecursive: one pass per call, recurse on the first n-1 items
//   - InsertionSort:       grow a sorted prefix by adjacent swaps
//   - InsertionSortShift:  grow a sorted prefix by shifting and inserting a key
//   - SelectionSort:       swap the minimum of the unsorted suffix into place
//   - MergeSort:           split in halves, merge through a scratch buffer
//   - QuickSort:           first-element pivot, Hoare-style partition
//
// Every sort has an Ordered form (T cmp.Ordered, natural order) and a Func
// form taking cmp func(a, b T) int with the slices.SortFunc contract.
//
// Why:
//
//   - Reference implementations with exact, documented loop bounds
//   - Measurable behavior: Stats reports comparisons, swaps, writes, passes
//     and recursion depth, so trade-offs can be observed, not just read about
//   - Explicit stability contract per algorithm, enforced by tests
//
// Guarantees:
//
//	Algorithm            Time (best / avg / worst)   Extra space   Stable
//	BubbleSort           n    / n²     / n²          O(1)          yes
//	BubbleSortRecursive  n²   / n²     / n²          O(n) stack    yes
//	InsertionSort        n    / n²     / n²          O(1)          yes
//	InsertionSortShift   n    / n²     / n²          O(1)          yes
//	SelectionSort        n²   / n²     / n²          O(1)          no
//	MergeSort            n·logn (all cases)          O(n)          yes
//	QuickSort            n·logn / n·logn / n²        O(log n)..O(n) no
//
// Options:
//
//   - WithStats(s)        copy diagnostics into *s when the call returns
//   - WithOnSwap(fn)      hook invoked after every swap with both indices
//   - WithMaxDepth(limit) bound the recursion depth of the recursive sorts
//
// Errors:
//
//   - ErrNilInput       nil slice (empty, non-nil slices are a no-op)
//   - ErrNilCompare     nil comparator passed to a Func variant
//   - ErrBadRange       Merge/Partition bounds outside the slice
//   - ErrDepthExceeded  recursion exceeded WithMaxDepth; the slice keeps its
//     elements but is only partially ordered
package sorting
