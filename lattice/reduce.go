// SPDX-License-Identifier: MIT
// Package lattice: the basis reduction loop.
//
// Gram state after a PivotFixed elimination, in logical order (U):
//   - U[i][i] = ‖b*ᵢ‖², the squared Gram–Schmidt norms.
//   - U[i][j] = ⟨bⱼ, b*ᵢ⟩ for i < j, so μ = U[i][j] / U[i][i].
//   - U[i][j] = 0 for i > j.
//
// Size reduction and the swap update edit U directly; the next elimination
// restores the triangular form, so inner products are never recomputed.

package lattice

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/katalvlaran/lvlnum/numeric"
)

// Result describes one Reduce call.
type Result[T numeric.Value[T]] struct {
	// Dim is the logical dimension up to which the basis is proven reduced.
	// Dim == b.Dim() iff Status == matrix.StatusSuccess.
	Dim int

	// Status is the elimination outcome that ended the call.
	Status matrix.Status

	// Per-call counters; also added to the *Stats given by WithStats.
	Iterations     int
	SizeReductions int
	Swaps          int

	// FinalLength is the product of the Gram diagonal when the call ended:
	// on success the product of the squared Gram–Schmidt norms, i.e. the
	// squared covolume of the lattice.
	FinalLength T
}

// Reduce LLL-reduces b in place.
//
// Implementation:
//   - Stage 1: validate (nil basis, tolerance, Dim() ≤ Length()); nothing is
//     touched on failure.
//   - Stage 2: rebuild the Gram state with BuildGram (shortest first). With
//     fewer than two vectors the basis is already reduced.
//   - Stage 3: while dim < n:
//     a) Eliminate(PivotFixed); any status but success ends the call with it.
//     b) size-reduce columns j = dim..n-1 against rows i = j-1..0 whenever
//     |μ| > SizeBound, on the vectors and on the Gram state together.
//     c) scan i = 1..n-1 for the first pair with
//     (U[i-1][i]²/U[i-1][i-1] + U[i][i]) / U[i-1][i-1] < Alpha; swap it
//     (incremental Gram update) and set dim = i, or set dim = n if none.
//
// Behavior highlights:
//   - Only vectors are combined and swapped (unimodular steps), so the
//     lattice never changes and FinalLength equals det of the original Gram.
//   - A PARTIAL or NUMERROR status leaves vectors and Gram state consistent
//     with the work done; Result.Dim reports how far the call got.
//
// Errors:
//   - ErrNilBasis, matrix.ErrInvalidTolerance, ErrTooManyVectors,
//     ErrDimensionMismatch (a vector whose length drifted from Length()).
//   - matrix errors from the Gram state (index or shape), wrapped; the
//     Result then carries the counters reached so far.
//
// Complexity:
//   - O(n³) per outer iteration for the elimination plus O(n²·length) for
//     size reduction.
func Reduce[T numeric.Value[T]](b *Basis[T], zeroTol float64, opts ...Option) (Result[T], error) {
	var res Result[T]
	if b == nil {
		return res, latticeErrorf(opReduce, ErrNilBasis)
	}
	if err := matrix.ValidateTolerance(zeroTol); err != nil {
		return res, latticeErrorf(opReduce, err)
	}
	n := len(b.vectors)
	if n > b.length {
		return res, latticeErrorf(opReduce, fmt.Errorf("%d vectors of length %d: %w", n, b.length, ErrTooManyVectors))
	}

	o := gatherOptions(opts...)
	g, err := BuildGram(b.vectors, b.length)
	if err != nil {
		return res, latticeErrorf(opReduce, err)
	}
	b.gram = g

	r := reducer[T]{b: b, g: g, tol: zeroTol}
	res, err = r.run(n, &o)
	record(&o, res, n)
	if err != nil {
		return res, latticeErrorf(opReduce, err)
	}

	return res, nil
}

// reducer bundles the state shared by the three stages of an iteration.
type reducer[T numeric.Value[T]] struct {
	b   *Basis[T]
	g   *matrix.Permuted[T]
	tol float64
	ord []int // logical → physical vector index
}

// run executes the outer loop over n vectors. An error means the Gram state
// rejected an index or shape the loop derived from it; the result then holds
// the counters up to that point.
func (r *reducer[T]) run(n int, o *options) (Result[T], error) {
	res := Result[T]{Dim: n, Status: matrix.StatusSuccess}
	if n < 2 {
		res.FinalLength = r.diagonalProduct()
		return res, nil
	}

	var (
		rank, count, i int
		st             matrix.Status
		err            error
	)
	for dim := 1; dim < n; {
		res.Iterations++
		if rank, st, err = matrix.Eliminate(r.g, matrix.PivotFixed, r.tol); err != nil {
			return res, err
		}
		if st != matrix.StatusSuccess {
			o.debug("elimination stopped", "iteration", res.Iterations, "dim", dim, "rank", rank, "status", st.String())
			res.Dim, res.Status = dim, st
			break
		}

		r.ord = r.g.ColOrder()
		count, err = r.sizeReduce(dim, n)
		res.SizeReductions += count
		if err != nil {
			return res, err
		}

		if i, err = r.firstViolation(n); err != nil {
			return res, err
		}
		if i > 0 {
			if err = r.swap(i); err != nil {
				return res, err
			}
			res.Swaps++
			dim = i
		} else {
			dim = n
		}
		o.debug("iteration", "iteration", res.Iterations, "dim", dim,
			"size_reductions", res.SizeReductions, "swaps", res.Swaps)
	}
	res.FinalLength = r.diagonalProduct()

	return res, nil
}

// sizeReduce makes |μ(i,j)| ≤ SizeBound for j = from..n-1, i = j-1..0 and
// returns the number of vector subtractions performed.
func (r *reducer[T]) sizeReduce(from, n int) (int, error) {
	var (
		count, i, j int
		num, den    T
		err         error
	)
	for j = from; j < n; j++ {
		for i = j - 1; i >= 0; i-- {
			if num, err = r.g.At(i, j); err != nil {
				return count, err
			}
			if den, err = r.g.At(i, i); err != nil {
				return count, err
			}
			mu := num.Quo(den)
			if mu.Abs().CmpFloat64(SizeBound) <= 0 {
				continue
			}
			q := numeric.Round(mu)
			if err = r.g.SubColMultiple(j, i, q); err != nil {
				return count, err
			}
			subMultiple(r.b.vectors[r.ord[j]], r.b.vectors[r.ord[i]], q)
			count++
		}
	}

	return count, nil
}

// firstViolation returns the first logical i ≥ 1 whose pair (i-1, i) fails
// the Lovász condition, or 0 when every pair holds.
func (r *reducer[T]) firstViolation(n int) (int, error) {
	for i := 1; i < n; i++ {
		l, err := r.lovasz(i)
		if err != nil {
			return 0, err
		}
		if l.CmpFloat64(Alpha) < 0 {
			return i, nil
		}
	}

	return 0, nil
}

// lovasz returns (U[i-1][i]²/U[i-1][i-1] + U[i][i]) / U[i-1][i-1], the
// squared length of b_i projected past b_0..b_{i-2}, relative to ‖b*_{i-1}‖².
func (r *reducer[T]) lovasz(i int) (T, error) {
	var zero T
	a, err := r.g.At(i-1, i-1)
	if err != nil {
		return zero, err
	}
	c, err := r.g.At(i-1, i)
	if err != nil {
		return zero, err
	}
	d, err := r.g.At(i, i)
	if err != nil {
		return zero, err
	}

	return c.Mul(c).Quo(a).Add(d).Quo(a), nil
}

// swap exchanges logical positions i-1 and i. Row i is first turned into the
// inner products against the projected b_i (row i += μ·row i-1) and its
// diagonal overwritten with that vector's squared norm; the elimination of
// the next iteration then yields the Gram–Schmidt data of the new order.
func (r *reducer[T]) swap(i int) error {
	a, err := r.g.At(i-1, i-1)
	if err != nil {
		return err
	}
	c, err := r.g.At(i-1, i)
	if err != nil {
		return err
	}
	l, err := r.lovasz(i)
	if err != nil {
		return err
	}
	mu, norm := c.Quo(a), l.Mul(a)

	if err = r.g.AddRowMultiple(i, i-1, mu); err != nil {
		return err
	}
	if err = r.g.Set(i, i, norm); err != nil {
		return err
	}
	if err = r.g.SwapRows(i-1, i); err != nil {
		return err
	}

	return r.g.SwapCols(i-1, i)
}

// diagonalProduct multiplies the logical diagonal of the Gram state.
func (r *reducer[T]) diagonalProduct() T {
	var z T
	p := z.One()
	for _, d := range r.g.Diagonal() {
		p = p.Mul(d)
	}

	return p
}

// subMultiple performs dst -= q·src element-wise.
func subMultiple[T numeric.Value[T]](dst, src []T, q T) {
	for k := range dst {
		dst[k] = dst[k].Sub(q.Mul(src[k]))
	}
}

// debug emits a Debug record when a logger is configured.
func (o *options) debug(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}

// record publishes the counters of one call to the shared Stats and logger.
func record[T numeric.Value[T]](o *options, res Result[T], n int) {
	if o.stats != nil {
		o.stats.add(res.Iterations, res.SizeReductions, res.Swaps)
	}
	if o.logger != nil {
		o.logger.Info("reduction finished",
			"vectors", n,
			"dim", res.Dim,
			"status", res.Status.String(),
			"iterations", res.Iterations,
			"size_reductions", res.SizeReductions,
			"swaps", res.Swaps,
			"final_length", res.FinalLength.Float64(),
		)
	}
}
