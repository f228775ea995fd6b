// SPDX-License-Identifier: MIT

// Package lattice implements LLL-style lattice basis reduction on top of the
// permutation-indexed elimination engine in package matrix.
//
// 🚀 What is basis reduction?
//
//	A lattice is every integer combination of a set of basis vectors. Many
//	bases describe the same lattice; a reduced basis has short, nearly
//	orthogonal vectors. Reduction powers integer-relation finding, knapsack
//	and subset-sum attacks, simultaneous Diophantine approximation and
//	lattice cryptanalysis.
//
// ✨ How it works here:
//   - BuildGram computes all inner products and orders the vectors by
//     increasing squared norm (rows and columns share one permutation).
//   - Each outer iteration eliminates the Gram state with PivotFixed, which
//     leaves Gram–Schmidt data in the upper triangle: GM[i][i] = ‖b*ᵢ‖² and
//     GM[i][j]/GM[i][i] = μ for i < j.
//   - Size reduction subtracts round(μ)·bᵢ from bⱼ whenever |μ| > 1/2, on the
//     vectors and on the Gram state (SubColMultiple) together.
//   - The first adjacent pair violating the Lovász condition with
//     Alpha = 1048575/1048576 is swapped after an incremental Gram update
//     (AddRowMultiple + diagonal overwrite), and progress restarts there.
//
// ⚙️ Usage:
//
//	b, _ := lattice.FromVectors([][]numeric.Rat{ ... })
//	res, err := lattice.Reduce(b, 0, lattice.WithStats(&stats))
//	if err != nil { /* malformed input */ }
//	if res.Status != matrix.StatusSuccess { /* numerically stuck at res.Dim */ }
//	reduced := b.Reduced()
//
// Errors vs. status:
//
//	Malformed input (more vectors than their length, length mismatches) is a
//	hard error and no work is done. Numerical trouble is reported as a
//	matrix.Status next to the dimension reached; the basis and Gram state are
//	left consistent with the work completed.
//
// Concurrency:
//
//	A Basis is not safe for concurrent use. Independent bases may be reduced
//	in parallel; a shared *Stats is safe (atomic counters).
package lattice
