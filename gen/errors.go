// SPDX-License-Identifier: MIT
// Package: lvsort/gen
//
// errors.go — sentinel errors for the gen package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w (see genErrorf).
//   • Constructors never panic; option constructors (WithX) panic on
//     meaningless values.

package gen

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates an invalid length, period or level count.
var ErrBadSize = errors.New("gen: invalid size")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("gen: rng is required")

// genErrorf wraps sentinel with a "<method>: <message>" context prefix.
func genErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// validateMin returns ErrBadSize when got < min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return genErrorf(method, ErrBadSize, "%s must be >= %d, got %d", name, min, got)
	}

	return nil
}
