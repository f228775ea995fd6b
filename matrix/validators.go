// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for argument validation.
//  - Return plain sentinel errors wrapped with the validator tag so call
//    sites can wrap once more with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; ValidatePermutation allocates one
//    []bool of length n.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IdentityPermutation returns [0, 1, ..., n-1].
// Complexity: O(n).
func IdentityPermutation(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// ValidatePermutation ensures p is a bijection on [0,n).
//
// Errors:
//   - ErrDimensionMismatch when len(p) != n.
//   - ErrNotPermutation on an out-of-range or repeated entry.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(p []int, n int) error {
	if len(p) != n {
		return validatorErrorf("ValidatePermutation", ErrDimensionMismatch)
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return validatorErrorf("ValidatePermutation", ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// ValidateTolerance ensures a zero tolerance is finite and non-negative.
// Complexity: O(1).
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return validatorErrorf("ValidateTolerance", ErrInvalidTolerance)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < n.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if !inRange(i, n) {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}
