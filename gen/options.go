// SPDX-License-Identifier: MIT
// Package: lvsort/gen
//
// options.go — functional options and deterministic defaults.
//
// Contract:
//   • Options mutate a genConfig passed by value to constructors.
//   • Later options override earlier ones.
//   • Option constructors panic on meaningless inputs (nil RNG,
//     non-positive step or max value).

package gen

import (
	"math/rand"
)

// Deterministic defaults.
const (
	defaultStart    = 0    // first value of deterministic shapes
	defaultStep     = 1    // distance between consecutive levels
	defaultMaxValue = 1000 // exclusive bound for Random draws
)

// Method names used as error prefixes.
const (
	MethodAscending  = "Ascending"
	MethodDescending = "Descending"
	MethodRandom     = "Random"
	MethodFewUnique  = "FewUnique"
	MethodSawtooth   = "Sawtooth"
	MethodOrganPipe  = "OrganPipe"
)

// genConfig aggregates all knobs used by constructors.
type genConfig struct {
	rng      *rand.Rand // nil means no randomness available
	start    int        // first value
	step     int        // > 0
	maxValue int        // > 0, exclusive
}

// Option customizes a constructor by mutating its genConfig.
type Option func(*genConfig)

// newConfig returns the defaults with opts applied in order.
func newConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:      nil,
		start:    defaultStart,
		step:     defaultStep,
		maxValue: defaultMaxValue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed attaches a new *rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches r, so several constructors can share one stream.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}

	return func(c *genConfig) {
		c.rng = r
	}
}

// WithStart sets the first value of Ascending, Descending, Sawtooth,
// OrganPipe and the lowest level of FewUnique. Any value is accepted.
func WithStart(v int) Option {
	return func(c *genConfig) {
		c.start = v
	}
}

// WithStep sets the distance between consecutive levels. Panics if d <= 0.
func WithStep(d int) Option {
	if d <= 0 {
		panic("gen: WithStep(d<=0)")
	}

	return func(c *genConfig) {
		c.step = d
	}
}

// WithMaxValue sets the exclusive upper bound of Random draws.
// Panics if m <= 0.
func WithMaxValue(m int) Option {
	if m <= 0 {
		panic("gen: WithMaxValue(m<=0)")
	}

	return func(c *genConfig) {
		c.maxValue = m
	}
}
