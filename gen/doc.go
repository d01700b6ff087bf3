// SPDX-License-Identifier: MIT

// Package gen builds deterministic integer input sequences for exercising
// and benchmarking sorting algorithms.
//
// What:
//
//   - Ascending / Descending: best and worst cases of adaptive sorts
//   - Random:                 uniform draws, reproducible via WithSeed
//   - FewUnique:              many duplicates, stresses stability and <= scans
//   - Sawtooth:               repeated ascending runs
//   - OrganPipe:              ascending then descending
//   - Tag / IsStable:         key+sequence items to observe stability
//
// Options:
//
//   - WithSeed(seed)   reproducible RNG for Random/FewUnique
//   - WithRand(r)      shared RNG stream across several calls
//   - WithStart(v)     first value of the deterministic shapes (default 0)
//   - WithStep(d)      distance between consecutive levels (default 1)
//   - WithMaxValue(m)  exclusive upper bound for Random draws (default 1000)
//
// Errors:
//
//   - ErrBadSize         negative length, non-positive period or level count
//   - ErrNeedRandSource  Random/FewUnique without WithSeed or WithRand
//
// Every constructor returns a fresh, non-nil slice (empty for n == 0) and
// performs O(n) work.
package gen
