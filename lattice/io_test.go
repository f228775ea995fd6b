// SPDX-License-Identifier: MIT
// Package lattice_test contains unit tests for the text reader.
package lattice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/lattice"
	"github.com/katalvlaran/lvlnum/numeric"
)

// TestParseVector covers separators, brackets and backend errors.
func TestParseVector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"[1, 2, 3]", []string{"1", "2", "3"}},
		{"1 2\t3", []string{"1", "2", "3"}},
		{" [ -1/2 ,0.25 ] ", []string{"-1/2", "1/4"}},
	}
	for _, tc := range tests {
		v, err := lattice.ParseVector[numeric.Rat](tc.in)
		require.NoError(t, err, tc.in)
		got := make([]string, len(v))
		for i, x := range v {
			got[i] = x.String()
		}
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := lattice.ParseVector[numeric.Float64]("[1, two]")
	require.ErrorIs(t, err, numeric.ErrSyntax)

	for _, in := range []string{"[]", ", ,", "[ , ]"} {
		v, err := lattice.ParseVector[numeric.Rat](in)
		require.ErrorIs(t, err, lattice.ErrEmptyInput, in)
		assert.Nil(t, v, in)
	}
}

// TestReadVectors covers comments, blank lines and both line formats.
func TestReadVectors(t *testing.T) {
	t.Parallel()

	in := `# knapsack, n=2
[1, 0, 30]

0 1 50
`
	b, err := lattice.ReadVectors[numeric.Rat](strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, b.Dim())
	assert.Equal(t, 3, b.Length())
	assert.Equal(t, []string{"[1 0 30]", "[0 1 50]"}, render(b.Vectors()))
}

// TestReadVectors_Errors reports the offending line.
func TestReadVectors_Errors(t *testing.T) {
	t.Parallel()

	_, err := lattice.ReadVectors[numeric.Rat](strings.NewReader("1 2\n\n1 2 3\n"))
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "line 3")

	_, err = lattice.ReadVectors[numeric.Rat](strings.NewReader("1 x\n"))
	require.ErrorIs(t, err, numeric.ErrSyntax)
	assert.Contains(t, err.Error(), "line 1")

	_, err = lattice.ReadVectors[numeric.Int32](strings.NewReader("1 9999999999\n"))
	require.ErrorIs(t, err, numeric.ErrRange)

	_, err = lattice.ReadVectors[numeric.Rat](strings.NewReader("# nothing\n\n"))
	require.ErrorIs(t, err, lattice.ErrEmptyInput)

	_, err = lattice.ReadVectors[numeric.Rat](strings.NewReader("[]\n1 2\n"))
	require.ErrorIs(t, err, lattice.ErrEmptyInput)
	assert.Contains(t, err.Error(), "line 1")

	_, err = lattice.ReadVectors[numeric.Rat](strings.NewReader("1 2\n,\n"))
	require.ErrorIs(t, err, lattice.ErrEmptyInput)
	assert.Contains(t, err.Error(), "line 2")
}
