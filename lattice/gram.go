// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/katalvlaran/lvlnum/numeric"
)

// BuildGram returns the n×n Gram matrix of vectors (n = len(vectors)):
// cell (p, q) in physical indices holds ⟨v_p, v_q⟩, the diagonal holds the
// squared norms.
//
// The vectors are then ordered by increasing squared norm with
// matrix.SortPermutation and that single order is installed as both the row
// and the column order, so logical position k addresses the k-th shortest
// vector on both axes. Equal norms may come out in either order.
//
// Errors:
//   - ErrDimensionMismatch when some vector's length differs from length.
//
// Complexity:
//   - Time O(n²·length + n log n), Space O(n²).
func BuildGram[T numeric.Value[T]](vectors [][]T, length int) (*matrix.Permuted[T], error) {
	g, err := gramUnsorted(vectors, length)
	if err != nil {
		return nil, err
	}

	n := len(vectors)
	ord := matrix.IdentityPermutation(n)
	if err = matrix.SortPermutation(ord, g.Diagonal()); err != nil {
		return nil, latticeErrorf(opBuildGram, err)
	}
	if err = g.Permute(ord, ord); err != nil {
		return nil, latticeErrorf(opBuildGram, err)
	}

	return g, nil
}

// gramUnsorted computes the symmetric inner-product table with identity
// orders; each off-diagonal product is computed once and stored twice.
func gramUnsorted[T numeric.Value[T]](vectors [][]T, length int) (*matrix.Permuted[T], error) {
	for k, v := range vectors {
		if len(v) != length {
			return nil, latticeErrorf(opBuildGram, fmt.Errorf("vector %d: got %d want %d: %w", k, len(v), length, ErrDimensionMismatch))
		}
	}

	n := len(vectors)
	g, err := matrix.NewPermuted[T](n, n)
	if err != nil {
		return nil, latticeErrorf(opBuildGram, err)
	}

	var p, q int
	for p = 0; p < n; p++ {
		for q = p; q < n; q++ {
			d := numeric.Dot(vectors[p], vectors[q])
			if err = g.Set(p, q, d); err != nil {
				return nil, latticeErrorf(opBuildGram, err)
			}
			if p != q {
				if err = g.Set(q, p, d); err != nil {
					return nil, latticeErrorf(opBuildGram, err)
				}
			}
		}
	}

	return g, nil
}
