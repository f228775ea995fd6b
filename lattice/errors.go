// SPDX-License-Identifier: MIT
// Package lattice: sentinel errors. Callers branch with errors.Is; context is
// attached with latticeErrorf at the detection site.

package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBasis indicates that a nil *Basis was passed in.
	ErrNilBasis = errors.New("lattice: nil basis")

	// ErrInvalidLength indicates a negative vector length or vector count.
	ErrInvalidLength = errors.New("lattice: length must be >= 0")

	// ErrDimensionMismatch indicates a vector whose length differs from the basis length.
	ErrDimensionMismatch = errors.New("lattice: vector length mismatch")

	// ErrTooManyVectors indicates more vectors than their ambient dimension:
	// such a set cannot be linearly independent.
	ErrTooManyVectors = errors.New("lattice: more vectors than their length")

	// ErrOutOfRange indicates a vector index outside [0, Dim()).
	ErrOutOfRange = errors.New("lattice: vector index out of range")

	// ErrEmptyInput indicates that no vector could be read, or a vector line
	// holds no entry.
	ErrEmptyInput = errors.New("lattice: no vectors in input")
)

// Operation tags.
const (
	opReduce      = "Reduce"
	opBuildGram   = "BuildGram"
	opAddVector   = "AddVector"
	opSetVector   = "SetVector"
	opReadVectors = "ReadVectors"
	opParseVector = "ParseVector"
	opGSNorms     = "GSNorms"
)

// latticeErrorf wraps err with an operation tag. Call only with a non-nil err.
func latticeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
