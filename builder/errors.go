// SPDX-License-Identifier: MIT
// Package: lvlnum/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context (method, offending parameter) is attached with %w at the
//     detection site through builderErrorf.
//   • Generators never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVectors indicates that a size parameter (vector count, length,
// number of weights) is smaller than the allowed minimum.
var ErrTooFewVectors = errors.New("builder: parameter too small")

// ErrInvalidBound indicates a non-positive entry bound or bit size, or
// parameters whose products do not fit in int64.
var ErrInvalidBound = errors.New("builder: invalid bound")

// ErrNeedRandSource indicates that a stochastic generator ran without a
// random stream (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that assembly failed: a nil constructor, or
// constructors producing rows of different lengths.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the method name and a formatted detail,
// keeping err available to errors.Is.
//
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
