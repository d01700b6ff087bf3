// SPDX-License-Identifier: MIT
// Package: lvsort/gen
//
// tagged.go — items that remember their input position, for stability checks.

package gen

import (
	"cmp"

	"github.com/samber/lo"
)

// Item is a sort key tagged with its position in the original input.
type Item struct {
	Key int // value the sort orders by
	Seq int // original index, never compared by CompareKey
}

// Tag wraps every key with its index in keys.
func Tag(keys []int) []Item {
	return lo.Map(keys, func(k int, i int) Item {
		return Item{Key: k, Seq: i}
	})
}

// Keys extracts the keys of items, in order.
func Keys(items []Item) []int {
	return lo.Map(items, func(it Item, _ int) int {
		return it.Key
	})
}

// CompareKey orders items by Key only, so items with equal keys compare
// equal and their relative order exposes the stability of a sort.
func CompareKey(a, b Item) int {
	return cmp.Compare(a.Key, b.Key)
}

// IsStable reports whether, for every key, the items carrying it appear in
// increasing Seq order.
// Complexity: O(n) time, O(distinct keys) space.
func IsStable(items []Item) bool {
	last := make(map[int]int, len(items)) // key -> last Seq seen
	for _, it := range items {
		if prev, ok := last[it.Key]; ok && prev > it.Seq {
			return false
		}
		last[it.Key] = it.Seq
	}

	return true
}
