// SPDX-License-Identifier: MIT
// Package matrix: pivoted Gaussian elimination over Permuted[T].
//
// Purpose:
//   - One elimination kernel for every numeric backend and all four pivot policies.
//   - Pivoting edits permutations only; the physical buffer never moves.
//   - Numerical outcomes are reported as Status, never as errors.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/numeric"
)

// Eliminate triangularizes m in place (forward elimination) and returns the
// achieved rank with a Status.
//
// Implementation:
//   - Stage 1: validate arguments (nil matrix, policy, tolerance).
//   - Stage 2: for k = 0..min(r,c)-1 locate the pivot per policy:
//     fixed → (k,k); row → best |m[k][j]|, j ≥ k; col → best |m[i][k]|, i ≥ k;
//     full → best |m[i][j]| over the trailing block. Ties keep the lowest index.
//   - Stage 3: if |pivot| ≤ zeroTol stop: StatusPartial under PivotFull
//     (the trailing block is singular), StatusNumError otherwise.
//   - Stage 4: move the pivot to (k,k) by permutation edits, subtract
//     (m[i][k]/pivot)·row k from every row i > k over the trailing columns,
//     and store an exact zero in m[i][k] so no rounding residue survives.
//
// Behavior highlights:
//   - rank ≤ min(rows, cols) always; the rank is returned whatever the status.
//   - Under PivotFixed the permutations are untouched.
//   - The strictly upper part of the result is U of an LU factorization in
//     logical order; the strictly lower part is exactly zero for processed columns.
//
// Errors:
//   - ErrNilMatrix, ErrUnknownPolicy, ErrInvalidTolerance (malformed input only).
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(1) beyond fresh scalars.
func Eliminate[T numeric.Value[T]](m *Permuted[T], policy PivotPolicy, zeroTol float64) (int, Status, error) {
	if m == nil {
		return 0, StatusNumError, matrixErrorf(opEliminate, ErrNilMatrix)
	}
	if !policy.valid() {
		return 0, StatusNumError, matrixErrorf(opEliminate, fmt.Errorf("policy %d: %w", int(policy), ErrUnknownPolicy))
	}
	if err := ValidateTolerance(zeroTol); err != nil {
		return 0, StatusNumError, matrixErrorf(opEliminate, err)
	}

	limit := min(m.r, m.c)
	var z T
	zero := z.Zero()

	var i, j, k, pi, pj int
	for k = 0; k < limit; k++ {
		pi, pj = m.locatePivot(k, policy)

		if !numeric.NonZero(m.at(pi, pj), zeroTol) {
			if policy == PivotFull {
				return k, StatusPartial, nil
			}
			return k, StatusNumError, nil
		}

		// Permutation edits only.
		if pi != k {
			m.rowOrd[pi], m.rowOrd[k] = m.rowOrd[k], m.rowOrd[pi]
		}
		if pj != k {
			m.colOrd[pj], m.colOrd[k] = m.colOrd[k], m.colOrd[pj]
		}

		pivot := m.at(k, k)
		for i = k + 1; i < m.r; i++ {
			e := m.at(i, k)
			if e.Sign() == 0 {
				continue // already eliminated
			}
			f := e.Quo(pivot)
			for j = k + 1; j < m.c; j++ {
				m.set(i, j, m.at(i, j).Sub(f.Mul(m.at(k, j))))
			}
			m.set(i, k, zero.Clone())
		}
	}

	return limit, StatusSuccess, nil
}

// locatePivot returns the logical coordinates of the pivot candidate for
// step k under policy. The strict ">" keeps the first maximum found.
func (m *Permuted[T]) locatePivot(k int, policy PivotPolicy) (int, int) {
	pi, pj := k, k
	switch policy {
	case PivotRow:
		best := m.at(k, k).Abs()
		for j := k + 1; j < m.c; j++ {
			if a := m.at(k, j).Abs(); a.Cmp(best) > 0 {
				best, pj = a, j
			}
		}
	case PivotCol:
		best := m.at(k, k).Abs()
		for i := k + 1; i < m.r; i++ {
			if a := m.at(i, k).Abs(); a.Cmp(best) > 0 {
				best, pi = a, i
			}
		}
	case PivotFull:
		best := m.at(k, k).Abs()
		for i := k; i < m.r; i++ {
			for j := k; j < m.c; j++ {
				if a := m.at(i, j).Abs(); a.Cmp(best) > 0 {
					best, pi, pj = a, i, j
				}
			}
		}
	}

	return pi, pj
}

// Rank is a convenience that eliminates a copy of m under full pivoting and
// returns only the rank; m is left untouched.
func Rank[T numeric.Value[T]](m *Permuted[T], zeroTol float64) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opEliminate, ErrNilMatrix)
	}
	rank, _, err := Eliminate(m.Copy(), PivotFull, zeroTol)

	return rank, err
}
