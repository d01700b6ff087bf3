// SPDX-License-Identifier: MIT

package sorting_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvsort/gen"
	"github.com/katalvlaran/lvsort/sorting"
)

// benchmarkSort runs fn on a fresh copy of src per iteration; copying is
// excluded from the timing.
func benchmarkSort(b *testing.B, fn func([]int, ...sorting.Option) error, src []int) {
	buf := make([]int, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(buf, src)
		b.StartTimer()
		if err := fn(buf); err != nil {
			b.Fatalf("sort failed: %v", err)
		}
	}
}

// BenchmarkSorts_Random1000 compares all sorts on 1,000 random ints.
func BenchmarkSorts_Random1000(b *testing.B) {
	src, err := gen.Random(1000, gen.WithSeed(1), gen.WithMaxValue(1<<20))
	if err != nil {
		b.Fatal(err)
	}
	for _, alg := range algorithms {
		b.Run(alg.name, func(b *testing.B) {
			benchmarkSort(b, alg.ordered, src)
		})
	}
}

// BenchmarkSorts_Ascending1000 shows the adaptive sorts' best case and
// quick sort's first-pivot worst case.
func BenchmarkSorts_Ascending1000(b *testing.B) {
	src, err := gen.Ascending(1000)
	if err != nil {
		b.Fatal(err)
	}
	for _, alg := range algorithms {
		b.Run(alg.name, func(b *testing.B) {
			benchmarkSort(b, alg.ordered, src)
		})
	}
}

// BenchmarkMergeSort_Random100k measures the O(n·log n) sort at scale.
func BenchmarkMergeSort_Random100k(b *testing.B) {
	src, err := gen.Random(100_000, gen.WithSeed(2), gen.WithMaxValue(1<<30))
	if err != nil {
		b.Fatal(err)
	}
	benchmarkSort(b, sorting.MergeSort[int], slices.Clone(src))
}
