// SPDX-License-Identifier: MIT

// Package matrix provides a permutation-indexed dense matrix over any
// numeric.Value backend, a permutation quicksort, and pivoted Gaussian
// elimination.
//
// What & Why:
//
//	Permuted[T] keeps its cells in a fixed row-major buffer and reaches them
//	through two index permutations (logical row/column → physical index).
//	Pivoting therefore never moves data: swapping two rows or columns is an
//	O(1) edit of a permutation slice, and callers that remember physical
//	indices (e.g. a basis vector's slot) stay valid across any elimination.
//
// Elimination:
//
//	Eliminate(m, policy, zeroTol) triangularizes m in place and reports the
//	achieved rank together with a Status:
//	  • StatusSuccess  — rank reached min(rows, cols).
//	  • StatusPartial  — full pivoting found a genuinely singular trailing block.
//	  • StatusNumError — a constrained pivot (fixed/row/col) was ≤ zeroTol.
//	Numerical outcomes are never errors; the error result is reserved for
//	malformed arguments (nil matrix, unknown policy, bad tolerance).
//
// Complexity quicksheet:
//   - NewPermuted/SetDimension: O(r*c); At/Set/SwapRows/SwapCols: O(1).
//   - SubColMultiple: O(r); AddRowMultiple: O(c).
//   - SortPermutation: O(n log n) expected.
//   - Eliminate: O(min(r,c) * r * c).
package matrix
