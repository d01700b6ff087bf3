// SPDX-License-Identifier: MIT

// Package lvsort is an in-memory toolkit of classic comparison sorts and
// ordered containers, written to be read, measured and tested.
//
// What is inside?
//
//	sorting/ — bubble (iterative and recursive), insertion (swap and shift),
//	           selection, merge and quick sort over []T, with exported
//	           Merge/Partition steps, Stats diagnostics and an OnSwap hook
//	stack/   — LIFO capability, slice-backed Stack, recursive and iterative
//	           stack sorting restricted to Push/Pop/Peek/IsEmpty
//	gen/     — deterministic input shapes (ascending, descending, random,
//	           few-unique, sawtooth, organ-pipe) and tagged items for
//	           stability checks
//
// Why lvsort?
//
//   - Exact, documented loop bounds for every algorithm
//   - Generic: Ordered forms for cmp.Ordered, Func forms for any type
//   - Explicit contracts: stability per algorithm, sentinel errors for
//     nil input, bad ranges and recursion limits
//   - No panics on user input; option constructors panic on nonsense values
//
// Quick example:
//
//	a := []int{9, 4, 7, 6, 3, 1, 5}
//	var st sorting.Stats
//	if err := sorting.MergeSort(a, sorting.WithStats(&st)); err != nil {
//		// sorting.ErrNilInput, sorting.ErrDepthExceeded, ...
//	}
//	// a == [1 3 4 5 6 7 9]
//
//	go get github.com/katalvlaran/lvsort
package lvsort
