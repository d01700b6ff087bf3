// SPDX-License-Identifier: MIT

// Package stack provides a minimal LIFO capability, a slice-backed Stack,
// and sorting of a stack through that capability alone.
//
// What:
//
//   - LIFO[T]:   Push, Pop, Peek, IsEmpty. Nothing else, in particular no
//     index-based view.
//   - Stack[T]:  the concrete container, with Len and an Items snapshot for
//     callers.
//   - Sort:      recursive insertion sort; the call stack is the only
//     auxiliary storage.
//   - SortIterative: the same result with one explicit auxiliary Stack,
//     for inputs too large for O(n) recursion.
//
// After either sort, popping the stack yields values in descending order:
// the largest value is on top.
//
// Algorithm (Sort):
//
//	sortStack(S):
//	  if S is empty: return
//	  v = pop(S); sortStack(S); insert(S, v)
//
//	insert(S, v):
//	  if S is empty or peek(S) <= v: push(S, v); return
//	  t = pop(S); insert(S, v); push(S, t)
//
// Every Peek and Pop is preceded by an IsEmpty check. A failure of either
// inside the sort is therefore reported as ErrInvariantViolation: it means
// the LIFO implementation broke its own contract.
//
// Complexity:
//
//	Sort:          Time O(n²), Space O(n) call frames (depth exactly n)
//	SortIterative: Time O(n²), Space O(n) auxiliary stack, no recursion
//
// Options:
//
//   - WithStats(s)        Comparisons, Pushes, Pops, MaxDepth
//   - WithMaxDepth(limit) bound the recursion of Sort
//
// Errors:
//
//   - ErrNilStack            nil LIFO passed to a sort
//   - ErrNilCompare          nil comparator passed to a Func variant
//   - ErrEmptyStack          Pop or Peek on an empty Stack
//   - ErrInvariantViolation  unguarded underflow inside a sort
//   - ErrDepthExceeded       recursion exceeded WithMaxDepth; every element
//     is still on the stack, in unspecified order
package stack
