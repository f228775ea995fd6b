// SPDX-License-Identifier: MIT
// Package: lvlnum/builder
//
// impl_uniform.go - Uniform(n, length, bound).
//
// Contract:
//   - n ≥ 1, length ≥ 1 (else ErrTooFewVectors).
//   - 1 ≤ bound ≤ (MaxInt64-1)/2 (else ErrInvalidBound).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Entries are drawn row-major, i asc then k asc.
//
// Rows are not guaranteed independent; with n ≤ length and a moderate bound a
// singular draw is rare but possible, which is exactly what tests of the
// NUMERROR path want.

package builder

// Uniform returns a Constructor emitting n rows of the given length with
// entries uniform in [-bound, bound].
//
// Complexity: O(n·length) time and space.
func Uniform(n, length int, bound int64) Constructor {
	return func(cfg builderConfig) ([][]int64, error) {
		if err := validateMin(MethodUniform, "n", n, MinVectors); err != nil {
			return nil, err
		}
		if err := validateMin(MethodUniform, "length", length, MinVectors); err != nil {
			return nil, err
		}
		if err := validateBound(MethodUniform, bound); err != nil {
			return nil, err
		}
		if err := validateRand(MethodUniform, cfg); err != nil {
			return nil, err
		}

		rows := make([][]int64, n)
		for i := range rows {
			rows[i] = make([]int64, length)
			for k := range rows[i] {
				rows[i][k] = cfg.uniform(bound)
			}
		}

		return rows, nil
	}
}
