// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w) and tests
// check them via errors.Is. Nothing in this package panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Context is attached at the detection site with matrixErrorf / permErrorf.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a logical or physical index is outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths, e.g. a permutation
	// or key slice whose length differs from the matrix side it describes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotPermutation indicates that an order slice is not a bijection on [0,n).
	ErrNotPermutation = errors.New("matrix: not a permutation")

	// ErrNilMatrix indicates that a nil matrix was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownPolicy indicates a PivotPolicy outside the declared set.
	ErrUnknownPolicy = errors.New("matrix: unknown pivot policy")

	// ErrInvalidTolerance indicates a negative, NaN or infinite zero tolerance.
	ErrInvalidTolerance = errors.New("matrix: tolerance must be finite and >= 0")
)

// Operation tags for uniform error wrapping.
const (
	opEliminate = "Eliminate"
	opSort      = "SortPermutation"
	opPermute   = "Permute"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// permErrorf wraps an error with a Permuted method context and coordinates.
func permErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Permuted.%s(%d,%d): %w", method, i, j, err)
}
