// SPDX-License-Identifier: MIT
// Package: lvsort/gen
//
// sequences.go — deterministic and seeded integer sequence shapes.

package gen

import (
	"github.com/samber/lo"
)

// Ascending returns start, start+step, ..., start+(n-1)*step.
// Errors: ErrBadSize if n < 0.
func Ascending(n int, opts ...Option) ([]int, error) {
	if err := validateMin(MethodAscending, "n", n, 0); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return lo.Times(n, func(i int) int {
		return cfg.start + i*cfg.step
	}), nil
}

// Descending returns the values of Ascending in reverse order.
// Errors: ErrBadSize if n < 0.
func Descending(n int, opts ...Option) ([]int, error) {
	if err := validateMin(MethodDescending, "n", n, 0); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return lo.Times(n, func(i int) int {
		return cfg.start + (n-1-i)*cfg.step
	}), nil
}

// Random returns n uniform draws from [0, maxValue).
// Errors: ErrBadSize if n < 0, ErrNeedRandSource without an RNG.
func Random(n int, opts ...Option) ([]int, error) {
	if err := validateMin(MethodRandom, "n", n, 0); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, genErrorf(MethodRandom, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	return lo.Times(n, func(int) int {
		return cfg.rng.Intn(cfg.maxValue)
	}), nil
}

// FewUnique returns n draws from the k levels start, start+step, ...,
// start+(k-1)*step. With k much smaller than n most keys repeat.
// Errors: ErrBadSize if n < 0 or k < 1, ErrNeedRandSource without an RNG.
func FewUnique(n, k int, opts ...Option) ([]int, error) {
	if err := validateMin(MethodFewUnique, "n", n, 0); err != nil {
		return nil, err
	}
	if err := validateMin(MethodFewUnique, "k", k, 1); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, genErrorf(MethodFewUnique, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	return lo.Times(n, func(int) int {
		return cfg.start + cfg.rng.Intn(k)*cfg.step
	}), nil
}

// Sawtooth returns n values rising by step and wrapping back to start every
// period samples: start, ..., start+(period-1)*step, start, ...
// Errors: ErrBadSize if n < 0 or period < 1.
func Sawtooth(n, period int, opts ...Option) ([]int, error) {
	if err := validateMin(MethodSawtooth, "n", n, 0); err != nil {
		return nil, err
	}
	if err := validateMin(MethodSawtooth, "period", period, 1); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return lo.Times(n, func(i int) int {
		return cfg.start + (i%period)*cfg.step
	}), nil
}

// OrganPipe returns n values rising to the middle and falling back:
// for n = 6, step 1, start 0 → [0 1 2 2 1 0].
// Errors: ErrBadSize if n < 0.
func OrganPipe(n int, opts ...Option) ([]int, error) {
	if err := validateMin(MethodOrganPipe, "n", n, 0); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return lo.Times(n, func(i int) int {
		return cfg.start + min(i, n-1-i)*cfg.step
	}), nil
}
