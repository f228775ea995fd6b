// SPDX-License-Identifier: MIT
// Package numeric_test checks the Value contract on every backend and the
// free helpers built on it.
package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/numeric"
)

// contract exercises the guarantees every backend must keep on small integers
// and, when exact halves are representable, on 2.5 / -2.5.
func contract[T numeric.Value[T]](t *testing.T, halves bool) {
	t.Helper()
	var z T
	seven, three := z.FromInt64(7), z.FromInt64(3)

	assert.Equal(t, 0, z.Zero().Sign(), "Zero")
	assert.Equal(t, 0, z.One().CmpFloat64(1), "One")
	assert.Equal(t, 0, seven.Sub(three).CmpFloat64(4), "Sub")
	assert.Equal(t, 0, seven.Add(three).CmpFloat64(10), "Add")
	assert.Equal(t, 0, seven.Mul(three).CmpFloat64(21), "Mul")
	assert.Equal(t, 0, z.FromInt64(21).Quo(three).CmpFloat64(7), "Quo exact")
	assert.Equal(t, 0, seven.Quo(z.FromInt64(2)).Floor().CmpFloat64(3), "Floor(7/2)")
	assert.Equal(t, 0, seven.Neg().CmpFloat64(-7), "Neg")
	assert.Equal(t, 0, seven.Neg().Abs().Cmp(seven), "Abs")
	assert.Equal(t, 0, z.FromInt64(5).MulUint(3).CmpFloat64(15), "MulUint")
	assert.Equal(t, "15", z.FromInt64(15).String(), "String")
	assert.InDelta(t, 7.0, seven.Float64(), 0, "Float64")

	assert.Equal(t, -1, three.Cmp(seven))
	assert.Equal(t, 1, seven.Cmp(three))
	assert.Equal(t, 0, seven.Cmp(seven.Clone()))
	assert.Equal(t, -1, seven.Neg().Sign())
	assert.True(t, numeric.Less(three, seven))
	assert.True(t, numeric.LessEq(seven, seven))
	assert.True(t, numeric.LessFloat64(three, 3.5))
	assert.True(t, numeric.LessEqFloat64(three, 3))

	// Operands are never mutated.
	_ = seven.Add(three).Mul(three).Neg()
	assert.Equal(t, 0, seven.CmpFloat64(7))
	assert.Equal(t, 0, three.CmpFloat64(3))

	if !halves {
		return
	}
	v, err := numeric.Parse[T]("2.5")
	require.NoError(t, err)
	assert.Equal(t, 0, v.CmpFloat64(2.5), "Parse")
	assert.Equal(t, 0, v.Floor().CmpFloat64(2), "Floor(2.5)")
	assert.Equal(t, 0, v.Neg().Floor().CmpFloat64(-3), "Floor(-2.5)")
	assert.Equal(t, 0, z.FromFloat64(-0.75).CmpFloat64(-0.75), "FromFloat64")
}

// TestValueContract runs the shared contract per backend.
func TestValueContract(t *testing.T) {
	t.Parallel()

	t.Run("Float64", func(t *testing.T) { contract[numeric.Float64](t, true) })
	t.Run("Float32", func(t *testing.T) { contract[numeric.Float32](t, true) })
	t.Run("Extended", func(t *testing.T) { contract[numeric.Extended](t, true) })
	t.Run("BigFloat", func(t *testing.T) { contract[numeric.BigFloat](t, true) })
	t.Run("Fixed", func(t *testing.T) { contract[numeric.Fixed](t, true) })
	t.Run("Rat", func(t *testing.T) { contract[numeric.Rat](t, true) })
	t.Run("Int32", func(t *testing.T) { contract[numeric.Int32](t, false) })
}

// TestNonZero checks |v| > tol, including the boundary.
func TestNonZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    float64
		tol  float64
		want bool
	}{
		{"below tol", 1e-13, 1e-12, false},
		{"negative above tol", -2e-12, 1e-12, true},
		{"at tol", 0.5, 0.5, false},
		{"exact zero, zero tol", 0, 0, false},
		{"tiny, zero tol", 1e-300, 0, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, numeric.NonZero(numeric.F64(tc.v), tc.tol))
		})
	}
}

// TestRound checks the floor-then-adjust rule: a tie stays on the floor.
func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int64
	}{
		{"1.5", 1},
		{"1.6", 2},
		{"-1.5", -2},
		{"-1.4", -1},
		{"2", 2},
		{"7/3", 2},
		{"-5/2", -3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			r := numeric.MustParse[numeric.Rat](tc.in)
			assert.Equal(t, 0, numeric.Round(r).Cmp(numeric.FromInt64[numeric.Rat](tc.want)))
		})
	}
}

// TestDotAndCloneVector covers the vector helpers.
func TestDotAndCloneVector(t *testing.T) {
	t.Parallel()

	a := numeric.FromInts[numeric.Rat]([]int64{1, 2, 3})
	b := numeric.FromInts[numeric.Rat]([]int64{4, 5, 6})
	assert.Equal(t, "32", numeric.Dot(a, b).String())
	assert.Equal(t, "0", numeric.Dot[numeric.Rat](nil, nil).String())

	c := numeric.CloneVector(a)
	require.Len(t, c, 3)
	c[0] = c[0].Add(c[0])
	assert.Equal(t, "1", a[0].String())
}

// TestParseAll stops at the first bad literal.
func TestParseAll(t *testing.T) {
	t.Parallel()

	vs, err := numeric.ParseAll[numeric.Float64]("1", "-2.5", "3e2")
	require.NoError(t, err)
	require.Len(t, vs, 3)
	assert.Equal(t, 300.0, vs[2].Value())

	_, err = numeric.ParseAll[numeric.Float64]("1", "x")
	require.ErrorIs(t, err, numeric.ErrSyntax)

	assert.Panics(t, func() { numeric.MustParse[numeric.Rat]("1/0") })
}
