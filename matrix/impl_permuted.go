// SPDX-License-Identifier: MIT

// Package matrix - Permuted storage (row-major) & permutation-indexed accessors.
//
// Purpose:
//   - Keep a fixed, cache-friendly row-major buffer with offset rowOrd[i]*c + colOrd[j].
//   - Express every row/column exchange as a permutation edit, never a data copy.
//   - Guarantee safety at the public surface: At/Set/Swap* return errors instead of panicking.
//   - Keep rowOrd/colOrd bijections at all times (only swaps and validated Permute edit them).
//
// Complexity quicksheet:
//   - NewPermuted/SetDimension: O(r*c); At/Set/Swap*: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlnum/numeric"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxAtPhysical = "AtPhysical"
	ctxSwapRows   = "SwapRows"
	ctxSwapCols   = "SwapCols"
	ctxSubColMul  = "SubColMultiple"
	ctxAddRowMul  = "AddRowMultiple"
	ctxSetDim     = "SetDimension"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Permuted is a dense matrix addressed through index permutations.
//   - r,c hold the logical dimensions.
//   - data is the physical row-major buffer (len == r*c).
//   - rowOrd[i] / colOrd[j] map logical positions to physical indices.
//
// Each cell exclusively owns its value; values are never shared between cells.
type Permuted[T numeric.Value[T]] struct {
	r, c   int
	data   []T
	rowOrd []int
	colOrd []int
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[numeric.Float64] = (*Permuted[numeric.Float64])(nil)
	_ fmt.Stringer            = (*Permuted[numeric.Float64])(nil)
)

// NewPermuted creates an r×c zero matrix with identity permutations.
// Zero-sized sides are legal (an empty basis has an empty Gram matrix).
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewPermuted[T numeric.Value[T]](rows, cols int) (*Permuted[T], error) {
	m := &Permuted[T]{}
	if err := m.SetDimension(rows, cols); err != nil {
		return nil, err
	}

	return m, nil
}

// SetDimension (re)allocates storage for rows×cols zero cells and resets
// both permutations to the identity. Prior contents are discarded.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0.
//   - Stage 2: allocate a fresh buffer filled with T's zero (no aliasing with the old one).
//   - Stage 3: reset rowOrd/colOrd to the identity.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Permuted[T]) SetDimension(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return permErrorf(ctxSetDim, rows, cols, ErrInvalidDimensions)
	}
	var z T
	zero := z.Zero()
	data := make([]T, rows*cols)
	for k := range data {
		data[k] = zero.Clone()
	}

	m.r, m.c = rows, cols
	m.data = data
	m.rowOrd = IdentityPermutation(rows)
	m.colOrd = IdentityPermutation(cols)

	return nil
}

// Rows returns the logical row count. O(1).
func (m *Permuted[T]) Rows() int { return m.r }

// Cols returns the logical column count. O(1).
func (m *Permuted[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols(). O(1).
func (m *Permuted[T]) Shape() (rows, cols int) { return m.r, m.c }

// offset maps logical (i, j) to the physical buffer offset. Unchecked.
func (m *Permuted[T]) offset(i, j int) int { return m.rowOrd[i]*m.c + m.colOrd[j] }

// at is the unchecked logical read used by hot loops.
func (m *Permuted[T]) at(i, j int) T { return m.data[m.offset(i, j)] }

// set is the unchecked logical write used by hot loops.
func (m *Permuted[T]) set(i, j int, v T) { m.data[m.offset(i, j)] = v }

// inRange reports 0 ≤ i < n.
func inRange(i, n int) bool { return i >= 0 && i < n }

// At returns the cell at logical (i, j) or ErrOutOfRange.
// Complexity: O(1).
func (m *Permuted[T]) At(i, j int) (T, error) {
	if !inRange(i, m.r) || !inRange(j, m.c) {
		var z T
		return z, permErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.at(i, j), nil
}

// Set stores v at logical (i, j) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Permuted[T]) Set(i, j int, v T) error {
	if !inRange(i, m.r) || !inRange(j, m.c) {
		return permErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.set(i, j, v.Clone())

	return nil
}

// AtPhysical reads the storage cell at physical (row, col), bypassing the
// permutations. Intended for display and debugging.
func (m *Permuted[T]) AtPhysical(row, col int) (T, error) {
	if !inRange(row, m.r) || !inRange(col, m.c) {
		var z T
		return z, permErrorf(ctxAtPhysical, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// RowOrder returns a copy of the logical→physical row permutation.
func (m *Permuted[T]) RowOrder() []int { return append([]int(nil), m.rowOrd...) }

// ColOrder returns a copy of the logical→physical column permutation.
func (m *Permuted[T]) ColOrder() []int { return append([]int(nil), m.colOrd...) }

// Permute installs new row and column orders. Both are validated as
// bijections before anything is written, so a failed call changes nothing.
//
// Errors:
//   - ErrDimensionMismatch when a length differs from the matching side.
//   - ErrNotPermutation when a slice is not a bijection on [0,n).
func (m *Permuted[T]) Permute(rowOrd, colOrd []int) error {
	if err := ValidatePermutation(rowOrd, m.r); err != nil {
		return matrixErrorf(opPermute, fmt.Errorf("rows: %w", err))
	}
	if err := ValidatePermutation(colOrd, m.c); err != nil {
		return matrixErrorf(opPermute, fmt.Errorf("cols: %w", err))
	}
	copy(m.rowOrd, rowOrd)
	copy(m.colOrd, colOrd)

	return nil
}

// SwapRows exchanges logical rows i and j. O(1), no data moves.
func (m *Permuted[T]) SwapRows(i, j int) error {
	if !inRange(i, m.r) || !inRange(j, m.r) {
		return permErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	m.rowOrd[i], m.rowOrd[j] = m.rowOrd[j], m.rowOrd[i]

	return nil
}

// SwapCols exchanges logical columns i and j. O(1), no data moves.
func (m *Permuted[T]) SwapCols(i, j int) error {
	if !inRange(i, m.c) || !inRange(j, m.c) {
		return permErrorf(ctxSwapCols, i, j, ErrOutOfRange)
	}
	m.colOrd[i], m.colOrd[j] = m.colOrd[j], m.colOrd[i]

	return nil
}

// SubColMultiple performs col[dst] -= factor * col[src] over every logical row.
// Used by size reduction to mirror b_dst -= q*b_src on the Gram state.
//
// Complexity:
//   - Time O(r), Space O(1) beyond the fresh scalars.
func (m *Permuted[T]) SubColMultiple(dst, src int, factor T) error {
	if !inRange(dst, m.c) || !inRange(src, m.c) {
		return permErrorf(ctxSubColMul, dst, src, ErrOutOfRange)
	}
	for i := 0; i < m.r; i++ {
		m.set(i, dst, m.at(i, dst).Sub(factor.Mul(m.at(i, src))))
	}

	return nil
}

// AddRowMultiple performs row[dst] += factor * row[src] over every logical
// column. Used by the swap step to update the Gram state incrementally.
//
// Complexity:
//   - Time O(c), Space O(1) beyond the fresh scalars.
func (m *Permuted[T]) AddRowMultiple(dst, src int, factor T) error {
	if !inRange(dst, m.r) || !inRange(src, m.r) {
		return permErrorf(ctxAddRowMul, dst, src, ErrOutOfRange)
	}
	for j := 0; j < m.c; j++ {
		m.set(dst, j, m.at(dst, j).Add(factor.Mul(m.at(src, j))))
	}

	return nil
}

// Diagonal returns the logical diagonal (length min(r, c)).
func (m *Permuted[T]) Diagonal() []T {
	n := min(m.r, m.c)
	out := make([]T, n)
	for k := 0; k < n; k++ {
		out[k] = m.at(k, k).Clone()
	}

	return out
}

// Copy returns an independent deep copy with the same permutations.
// Complexity: O(r*c).
func (m *Permuted[T]) Copy() *Permuted[T] {
	data := make([]T, len(m.data))
	for k := range m.data {
		data[k] = m.data[k].Clone()
	}

	return &Permuted[T]{
		r:      m.r,
		c:      m.c,
		data:   data,
		rowOrd: m.RowOrder(),
		colOrd: m.ColOrder(),
	}
}

// Clone implements Matrix; the dynamic type is *Permuted[T].
func (m *Permuted[T]) Clone() Matrix[T] { return m.Copy() }

// Do visits every cell in logical row-major order; it stops when f returns false.
func (m *Permuted[T]) Do(f func(i, j int, v T) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.at(i, j)) {
				return
			}
		}
	}
}

// String renders the matrix in logical order, one row per line.
// Intended for logs and debugging, not hot paths.
func (m *Permuted[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(m.at(i, j).String())
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
