// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Permuted storage and its
// permutation-only row/column edits.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/katalvlaran/lvlnum/numeric"
)

// fromRows builds a Permuted[T] with identity orders from integer rows.
func fromRows[T numeric.Value[T]](t testing.TB, rows [][]int64) *matrix.Permuted[T] {
	t.Helper()
	var c int
	if len(rows) > 0 {
		c = len(rows[0])
	}
	m, err := matrix.NewPermuted[T](len(rows), c)
	require.NoError(t, err)
	for i, r := range rows {
		for j, v := range r {
			require.NoError(t, m.Set(i, j, numeric.FromInt64[T](v)))
		}
	}

	return m
}

// cellString reads logical (i, j) as a string, failing the test on error.
func cellString[T numeric.Value[T]](t testing.TB, m *matrix.Permuted[T], i, j int) string {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v.String()
}

// TestNewPermuted covers shapes, zero fill and invalid dimensions.
func TestNewPermuted(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewPermuted[numeric.Rat](2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, "0", cellString(t, m, 1, 2))
	assert.Equal(t, []int{0, 1}, m.RowOrder())
	assert.Equal(t, []int{0, 1, 2}, m.ColOrder())

	empty, err := matrix.NewPermuted[numeric.Float64](0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, "", empty.String())

	_, err = matrix.NewPermuted[numeric.Float64](-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestPermuted_AtSet covers bounds and value ownership.
func TestPermuted_AtSet(t *testing.T) {
	t.Parallel()

	m := fromRows[numeric.Float64](t, [][]int64{{1, 2}, {3, 4}})

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(ij[0], ij[1], numeric.F64(0)), matrix.ErrOutOfRange)
		_, err = m.AtPhysical(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}

	require.NoError(t, m.Set(0, 1, numeric.F64(9)))
	assert.Equal(t, "[1, 9]\n[3, 4]\n", m.String())
}

// TestPermuted_Swaps checks that swaps edit the logical view only.
func TestPermuted_Swaps(t *testing.T) {
	t.Parallel()

	m := fromRows[numeric.Rat](t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, m.SwapRows(0, 1))
	require.NoError(t, m.SwapCols(0, 2))
	assert.Equal(t, "[6, 5, 4]\n[3, 2, 1]\n", m.String())
	assert.Equal(t, []int{1, 0}, m.RowOrder())
	assert.Equal(t, []int{2, 1, 0}, m.ColOrder())

	// Physical storage never moved.
	v, err := m.AtPhysical(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())

	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapCols(-1, 0), matrix.ErrOutOfRange)

	// Orders handed out are copies.
	ord := m.RowOrder()
	ord[0] = 7
	assert.Equal(t, []int{1, 0}, m.RowOrder())
}

// TestPermuted_Permute covers validation and the all-or-nothing update.
func TestPermuted_Permute(t *testing.T) {
	t.Parallel()

	m := fromRows[numeric.Rat](t, [][]int64{{1, 2}, {3, 4}})

	require.ErrorIs(t, m.Permute([]int{0, 0}, []int{0, 1}), matrix.ErrNotPermutation)
	require.ErrorIs(t, m.Permute([]int{0, 1}, []int{2, 0}), matrix.ErrNotPermutation)
	require.ErrorIs(t, m.Permute([]int{0}, []int{0, 1}), matrix.ErrDimensionMismatch)
	assert.Equal(t, []int{0, 1}, m.RowOrder(), "failed Permute must not write")

	require.NoError(t, m.Permute([]int{1, 0}, []int{1, 0}))
	assert.Equal(t, "[4, 3]\n[2, 1]\n", m.String())
}

// TestPermuted_RowColMultiples covers the two update kernels used by reduction.
func TestPermuted_RowColMultiples(t *testing.T) {
	t.Parallel()

	m := fromRows[numeric.Rat](t, [][]int64{{1, 2}, {3, 4}})

	// col1 -= 2·col0
	require.NoError(t, m.SubColMultiple(1, 0, numeric.FromInt64[numeric.Rat](2)))
	assert.Equal(t, "[1, 0]\n[3, -2]\n", m.String())

	// row0 += 1/2·row1, addressed logically after a swap.
	require.NoError(t, m.SwapRows(0, 1))
	require.NoError(t, m.AddRowMultiple(1, 0, numeric.NewRat(1, 2)))
	assert.Equal(t, "[3, -2]\n[5/2, -1]\n", m.String())

	require.ErrorIs(t, m.SubColMultiple(2, 0, numeric.Rat{}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddRowMultiple(0, 2, numeric.Rat{}), matrix.ErrOutOfRange)
}

// TestPermuted_CopyAndReset covers deep copies, SetDimension and helpers.
func TestPermuted_CopyAndReset(t *testing.T) {
	t.Parallel()

	m := fromRows[numeric.Rat](t, [][]int64{{1, 2}, {3, 4}})
	require.NoError(t, m.SwapRows(0, 1))

	cp := m.Copy()
	require.NoError(t, cp.Set(0, 0, numeric.FromInt64[numeric.Rat](100)))
	assert.Equal(t, "3", cellString(t, m, 0, 0))
	assert.Equal(t, m.RowOrder(), cp.RowOrder())

	var iface matrix.Matrix[numeric.Rat] = m
	cl := iface.Clone()
	assert.Equal(t, 2, cl.Rows())
	assert.Equal(t, 2, cl.Cols())

	diag := m.Diagonal()
	require.Len(t, diag, 2)
	assert.Equal(t, "3", diag[0].String())
	assert.Equal(t, "2", diag[1].String())

	var visited int
	m.Do(func(i, j int, v numeric.Rat) bool {
		visited++
		return !(i == 0 && j == 1)
	})
	assert.Equal(t, 2, visited)

	require.NoError(t, m.SetDimension(3, 1))
	assert.Equal(t, []int{0, 1, 2}, m.RowOrder())
	assert.Equal(t, "[0]\n[0]\n[0]\n", m.String())
	require.ErrorIs(t, m.SetDimension(1, -1), matrix.ErrInvalidDimensions)
}
