// SPDX-License-Identifier: MIT

package gen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsort/gen"
)

func TestAscendingDescending(t *testing.T) {
	asc, err := gen.Ascending(5, gen.WithStart(10), gen.WithStep(2))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 12, 14, 16, 18}, asc)

	desc, err := gen.Descending(5, gen.WithStart(10), gen.WithStep(2))
	require.NoError(t, err)
	assert.Equal(t, []int{18, 16, 14, 12, 10}, desc)
}

func TestZeroLengthIsEmptyNotNil(t *testing.T) {
	asc, err := gen.Ascending(0)
	require.NoError(t, err)
	assert.NotNil(t, asc)
	assert.Empty(t, asc)

	r, err := gen.Random(0, gen.WithSeed(1))
	require.NoError(t, err)
	assert.NotNil(t, r)
	assert.Empty(t, r)
}

func TestBadSize(t *testing.T) {
	tests := []struct {
		name string
		call func() ([]int, error)
	}{
		{"Ascending n<0", func() ([]int, error) { return gen.Ascending(-1) }},
		{"Descending n<0", func() ([]int, error) { return gen.Descending(-1) }},
		{"Random n<0", func() ([]int, error) { return gen.Random(-1, gen.WithSeed(1)) }},
		{"FewUnique k<1", func() ([]int, error) { return gen.FewUnique(4, 0, gen.WithSeed(1)) }},
		{"Sawtooth period<1", func() ([]int, error) { return gen.Sawtooth(4, 0) }},
		{"OrganPipe n<0", func() ([]int, error) { return gen.OrganPipe(-3) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.call()
			assert.ErrorIs(t, err, gen.ErrBadSize)
			assert.Nil(t, out)
		})
	}
}

func TestRandomNeedsRNG(t *testing.T) {
	_, err := gen.Random(3)
	assert.ErrorIs(t, err, gen.ErrNeedRandSource)

	_, err = gen.FewUnique(3, 2)
	assert.ErrorIs(t, err, gen.ErrNeedRandSource)
}

func TestRandomDeterministicAndBounded(t *testing.T) {
	a, err := gen.Random(50, gen.WithSeed(42), gen.WithMaxValue(10))
	require.NoError(t, err)
	b, err := gen.Random(50, gen.WithSeed(42), gen.WithMaxValue(10))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must give the same sequence")
	for _, v := range a {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
}

func TestSharedRandStream(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	a, err := gen.Random(20, gen.WithRand(r))
	require.NoError(t, err)
	b, err := gen.Random(20, gen.WithRand(r))
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "a shared stream continues between calls")
}

func TestFewUniqueLevels(t *testing.T) {
	out, err := gen.FewUnique(200, 3, gen.WithSeed(3), gen.WithStart(5), gen.WithStep(10))
	require.NoError(t, err)
	require.Len(t, out, 200)
	for _, v := range out {
		assert.Contains(t, []int{5, 15, 25}, v)
	}
}

func TestSawtoothAndOrganPipe(t *testing.T) {
	saw, err := gen.Sawtooth(7, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, saw)

	pipe, err := gen.OrganPipe(6)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 2, 1, 0}, pipe)

	pipe, err = gen.OrganPipe(5, gen.WithStart(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 2, 1}, pipe)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { gen.WithRand(nil) })
	assert.Panics(t, func() { gen.WithStep(0) })
	assert.Panics(t, func() { gen.WithMaxValue(-1) })
}

func TestTagAndIsStable(t *testing.T) {
	items := gen.Tag([]int{5, 3, 5})
	assert.Equal(t, []gen.Item{{Key: 5, Seq: 0}, {Key: 3, Seq: 1}, {Key: 5, Seq: 2}}, items)
	assert.Equal(t, []int{5, 3, 5}, gen.Keys(items))

	stable := []gen.Item{{Key: 3, Seq: 1}, {Key: 5, Seq: 0}, {Key: 5, Seq: 2}}
	assert.True(t, gen.IsStable(stable))

	unstable := []gen.Item{{Key: 3, Seq: 1}, {Key: 5, Seq: 2}, {Key: 5, Seq: 0}}
	assert.False(t, gen.IsStable(unstable))

	assert.Equal(t, 0, gen.CompareKey(gen.Item{Key: 5, Seq: 0}, gen.Item{Key: 5, Seq: 9}))
	assert.Negative(t, gen.CompareKey(gen.Item{Key: 1}, gen.Item{Key: 2}))
}
