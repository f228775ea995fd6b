// SPDX-License-Identifier: MIT
// Package lattice_test contains unit tests for Basis construction, access and
// mutation.
package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/lattice"
	"github.com/katalvlaran/lvlnum/numeric"
)

// mustBasis builds a Rat basis from integer rows.
func mustBasis(t testing.TB, rows [][]int64) *lattice.Basis[numeric.Rat] {
	t.Helper()
	b, err := lattice.FromInts[numeric.Rat](rows)
	require.NoError(t, err)

	return b
}

// render formats vectors as "[a b] [c d]" for compact assertions.
func render[T numeric.Value[T]](vs [][]T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		s := "["
		for k, x := range v {
			if k > 0 {
				s += " "
			}
			s += x.String()
		}
		out[i] = s + "]"
	}

	return out
}

// TestNewBasis covers the empty constructor and its validation.
func TestNewBasis(t *testing.T) {
	t.Parallel()

	b, err := lattice.NewBasis[numeric.Float64](3)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Dim())
	assert.Equal(t, 3, b.Length())
	assert.Nil(t, b.Gram())
	assert.Empty(t, b.Order())

	_, err = lattice.NewBasis[numeric.Float64](-1)
	require.ErrorIs(t, err, lattice.ErrInvalidLength)

	var zero lattice.Basis[numeric.Rat]
	assert.Equal(t, 0, zero.Dim())
	assert.Equal(t, 0, zero.Length())
}

// TestFromVectors covers length inference, mismatch and deep copies.
func TestFromVectors(t *testing.T) {
	t.Parallel()

	src := [][]numeric.Rat{
		numeric.FromInts[numeric.Rat]([]int64{1, 2}),
		numeric.FromInts[numeric.Rat]([]int64{3, 4}),
	}
	b, err := lattice.FromVectors(src)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Dim())
	assert.Equal(t, 2, b.Length())

	src[0][0] = numeric.FromInt64[numeric.Rat](99)
	v, err := b.Vector(0)
	require.NoError(t, err)
	assert.Equal(t, "1", v[0].String(), "input is copied")

	v[1] = numeric.FromInt64[numeric.Rat](99)
	assert.Equal(t, []string{"[1 2]", "[3 4]"}, render(b.Vectors()), "output is copied")

	_, err = lattice.FromInts[numeric.Rat]([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)

	_, err = b.Vector(2)
	require.ErrorIs(t, err, lattice.ErrOutOfRange)
}

// TestBasis_AddVectors checks that a failing batch adds nothing.
func TestBasis_AddVectors(t *testing.T) {
	t.Parallel()

	b := mustBasis(t, [][]int64{{1, 0, 0}})
	err := b.AddVectors(
		numeric.FromInts[numeric.Rat]([]int64{0, 1, 0}),
		numeric.FromInts[numeric.Rat]([]int64{0, 1}),
	)
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
	assert.Equal(t, 1, b.Dim())

	require.ErrorIs(t, b.AddVector(numeric.FromInts[numeric.Rat]([]int64{1})), lattice.ErrDimensionMismatch)
	require.NoError(t, b.AddVector(numeric.FromInts[numeric.Rat]([]int64{0, 0, 5})))
	assert.Equal(t, []string{"[1 0 0]", "[0 0 5]"}, render(b.Vectors()))
}

// TestBasis_Resize covers SetLength and SetDimension in both directions.
func TestBasis_Resize(t *testing.T) {
	t.Parallel()

	b := mustBasis(t, [][]int64{{1, 2}, {3, 4}})

	require.NoError(t, b.SetLength(3))
	assert.Equal(t, []string{"[1 2 0]", "[3 4 0]"}, render(b.Vectors()))
	require.NoError(t, b.SetLength(1))
	assert.Equal(t, []string{"[1]", "[3]"}, render(b.Vectors()))
	require.ErrorIs(t, b.SetLength(-2), lattice.ErrInvalidLength)

	require.NoError(t, b.SetDimension(3))
	assert.Equal(t, []string{"[1]", "[3]", "[0]"}, render(b.Vectors()))
	require.NoError(t, b.SetDimension(1))
	assert.Equal(t, []string{"[1]"}, render(b.Vectors()))
	require.ErrorIs(t, b.SetDimension(-1), lattice.ErrInvalidLength)

	// Growing after a shrink must not resurrect dropped vectors.
	require.NoError(t, b.SetDimension(2))
	assert.Equal(t, []string{"[1]", "[0]"}, render(b.Vectors()))
}

// TestBasis_MutationDropsGram checks that every mutation invalidates the
// Gram state of the last reduction.
func TestBasis_MutationDropsGram(t *testing.T) {
	t.Parallel()

	mutations := map[string]func(b *lattice.Basis[numeric.Rat]) error{
		"SetVector": func(b *lattice.Basis[numeric.Rat]) error {
			return b.SetVector(0, numeric.FromInts[numeric.Rat]([]int64{5, 0}))
		},
		"SetLength":    func(b *lattice.Basis[numeric.Rat]) error { return b.SetLength(3) },
		"SetDimension": func(b *lattice.Basis[numeric.Rat]) error { return b.SetDimension(1) },
		"AddVector": func(b *lattice.Basis[numeric.Rat]) error {
			return b.AddVector(numeric.FromInts[numeric.Rat]([]int64{0, 0}))
		},
	}
	for name, mutate := range mutations {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b := mustBasis(t, [][]int64{{1, 1}, {2, 1}})
			_, err := lattice.Reduce(b, 0)
			require.NoError(t, err)
			require.NotNil(t, b.Gram())
			require.Equal(t, []int{1, 0}, b.Order())

			require.NoError(t, mutate(b))
			assert.Nil(t, b.Gram())
			assert.Equal(t, b.Dim(), len(b.Order()))
			assert.Equal(t, 0, b.Order()[0])
		})
	}
}

// TestBasis_SetVectorErrors covers index and length checks.
func TestBasis_SetVectorErrors(t *testing.T) {
	t.Parallel()

	b := mustBasis(t, [][]int64{{1, 2}})
	require.ErrorIs(t, b.SetVector(1, numeric.FromInts[numeric.Rat]([]int64{0, 0})), lattice.ErrOutOfRange)
	require.ErrorIs(t, b.SetVector(-1, numeric.FromInts[numeric.Rat]([]int64{0, 0})), lattice.ErrOutOfRange)
	require.ErrorIs(t, b.SetVector(0, numeric.FromInts[numeric.Rat]([]int64{0})), lattice.ErrDimensionMismatch)
}
