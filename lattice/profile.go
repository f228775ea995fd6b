// SPDX-License-Identifier: MIT

package lattice

import (
	"math"

	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/katalvlaran/lvlnum/numeric"
)

// GSNorms returns the squared Gram–Schmidt norms ‖b*ᵢ‖² in logical order.
//
// The Gram state of the last Reduce is used when present (it is copied, not
// modified); otherwise a fresh one is built with BuildGram. A PivotFixed
// elimination of that copy leaves the norms on the diagonal. When the
// elimination stops early only the first rank norms are returned, together
// with the status.
//
// Errors:
//   - ErrNilBasis, matrix.ErrInvalidTolerance, ErrDimensionMismatch.
func GSNorms[T numeric.Value[T]](b *Basis[T], zeroTol float64) ([]T, matrix.Status, error) {
	if b == nil {
		return nil, matrix.StatusNumError, latticeErrorf(opGSNorms, ErrNilBasis)
	}

	var g *matrix.Permuted[T]
	if b.gram != nil {
		g = b.gram.Copy()
	} else {
		var err error
		if g, err = BuildGram(b.vectors, b.length); err != nil {
			return nil, matrix.StatusNumError, latticeErrorf(opGSNorms, err)
		}
	}

	rank, st, err := matrix.Eliminate(g, matrix.PivotFixed, zeroTol)
	if err != nil {
		return nil, st, latticeErrorf(opGSNorms, err)
	}

	return g.Diagonal()[:rank], st, nil
}

// GSProfile is GSNorms on a log scale: log2 ‖b*ᵢ‖² / 2 = log2 ‖b*ᵢ‖. A
// reduced basis has a flat, slowly decreasing profile; a skewed input
// basis has a steep one.
func GSProfile[T numeric.Value[T]](b *Basis[T], zeroTol float64) ([]float64, matrix.Status, error) {
	norms, st, err := GSNorms(b, zeroTol)
	if err != nil {
		return nil, st, err
	}
	out := make([]float64, len(norms))
	for i, v := range norms {
		out[i] = math.Log2(v.Float64()) / 2
	}

	return out, st, nil
}
