// SPDX-License-Identifier: MIT

package sorting_test

import (
	"slices"
	stdsort "sort"
	"testing"

	"github.com/stretchr/testify/require"
	algosort "github.com/twmb/algoimpl/go/sort"

	"github.com/katalvlaran/lvsort/gen"
	"github.com/katalvlaran/lvsort/sorting"
)

// algorithm describes one sort under test in both of its forms.
type algorithm struct {
	name    string
	ordered func([]int, ...sorting.Option) error
	tagged  func([]gen.Item, func(a, b gen.Item) int, ...sorting.Option) error
	stable  bool
}

// algorithms lists every sort of the package with its stability contract.
// Quick and selection sort are not stable and are never checked for it.
var algorithms = []algorithm{
	{"BubbleSort", sorting.BubbleSort[int], sorting.BubbleSortFunc[gen.Item], true},
	{"BubbleSortRecursive", sorting.BubbleSortRecursive[int], sorting.BubbleSortRecursiveFunc[gen.Item], true},
	{"InsertionSort", sorting.InsertionSort[int], sorting.InsertionSortFunc[gen.Item], true},
	{"InsertionSortShift", sorting.InsertionSortShift[int], sorting.InsertionSortShiftFunc[gen.Item], true},
	{"SelectionSort", sorting.SelectionSort[int], sorting.SelectionSortFunc[gen.Item], false},
	{"MergeSort", sorting.MergeSort[int], sorting.MergeSortFunc[gen.Item], true},
	{"QuickSort", sorting.QuickSort[int], sorting.QuickSortFunc[gen.Item], false},
}

// input is a named fixture sequence.
type input struct {
	name string
	data []int
}

// fixtures returns the shapes every sort is checked against.
func fixtures(t *testing.T) []input {
	t.Helper()

	out := []input{
		{"empty", []int{}},
		{"single", []int{42}},
		{"pair", []int{2, 1}},
		{"negatives", []int{0, -3, 7, -3, 2, -100, 55}},
	}
	add := func(name string, data []int, err error) {
		require.NoError(t, err, name)
		out = append(out, input{name, data})
	}
	asc, err := gen.Ascending(64)
	add("ascending", asc, err)
	desc, err := gen.Descending(64)
	add("descending", desc, err)
	rnd, err := gen.Random(200, gen.WithSeed(1))
	add("random", rnd, err)
	few, err := gen.FewUnique(150, 4, gen.WithSeed(2))
	add("few-unique", few, err)
	saw, err := gen.Sawtooth(90, 7)
	add("sawtooth", saw, err)
	pipe, err := gen.OrganPipe(81)
	add("organ-pipe", pipe, err)

	return out
}

// heapSorted returns a sorted copy of in, computed by an independent
// heap sort implementation.
func heapSorted(in []int) []int {
	out := slices.Clone(in)
	algosort.HeapSort(stdsort.IntSlice(out))

	return out
}
