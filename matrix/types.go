// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage and elimination.
package matrix

import "github.com/katalvlaran/lvlnum/numeric"

// DefaultZeroTol is a reasonable zero tolerance for Float64 inputs of
// moderate magnitude. Exact backends (Rat) can use 0.
const DefaultZeroTol = 1e-12

// Matrix is the read/write surface shared by matrix implementations.
// Indices are logical; out-of-range access returns ErrOutOfRange.
type Matrix[T numeric.Value[T]] interface {
	// Rows returns the number of logical rows. O(1).
	Rows() int

	// Cols returns the number of logical columns. O(1).
	Cols() int

	// At returns the cell at logical (i, j). O(1).
	At(i, j int) (T, error)

	// Set stores v at logical (i, j). O(1).
	Set(i, j int, v T) error

	// Clone returns an independent deep copy. O(rows*cols).
	Clone() Matrix[T]
}

// PivotPolicy selects how Eliminate chooses each pivot.
type PivotPolicy int

const (
	// PivotFixed always pivots on the current logical diagonal cell and never
	// edits the permutations. Use it when the logical order carries meaning.
	PivotFixed PivotPolicy = iota

	// PivotRow searches the current logical row for the largest magnitude and
	// swaps columns.
	PivotRow

	// PivotCol searches the current logical column for the largest magnitude
	// and swaps rows.
	PivotCol

	// PivotFull searches the whole trailing submatrix and swaps both.
	PivotFull
)

// String returns a stable name for logs.
func (p PivotPolicy) String() string {
	switch p {
	case PivotFixed:
		return "fixed"
	case PivotRow:
		return "row"
	case PivotCol:
		return "col"
	case PivotFull:
		return "full"
	default:
		return "unknown"
	}
}

// valid reports whether p is a declared policy.
func (p PivotPolicy) valid() bool { return p >= PivotFixed && p <= PivotFull }

// Status is the numerical outcome of an elimination (or of a reduction built
// on it). It is reported alongside the achieved rank, never as an error.
type Status int

const (
	// StatusSuccess: the rank reached min(rows, cols).
	StatusSuccess Status = iota

	// StatusPartial: a genuinely singular trailing block was found under full
	// pivoting. Trying harder will not help.
	StatusPartial

	// StatusNumError: a constrained pivot was not distinguishable from zero.
	// Relaxing the tolerance or the pivot policy may help.
	StatusNumError
)

// String returns a stable name for logs.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusPartial:
		return "PARTIAL"
	case StatusNumError:
		return "NUMERROR"
	default:
		return "UNKNOWN"
	}
}
