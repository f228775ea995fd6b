// Package lvlnum is a small engine for exact and approximate lattice basis
// reduction over interchangeable scalar backends.
//
// 🚀 What is lvlnum?
//
//	A pure-Go library that brings together:
//		• Scalars: one generic Value contract with float, extended, arbitrary
//		  precision, fixed-point, exact rational and saturating int32 backends
//		• Matrices: a dense store addressed through row/column permutations,
//		  so pivoting never moves data
//		• Elimination: Gaussian elimination under fixed, row, column and full
//		  pivoting, reporting rank and a numerical status instead of failing
//		• Lattices: Gram matrices ordered by norm and LLL reduction with
//		  shared, concurrency-safe counters
//		• Fixtures: seeded knapsack, uniform and unimodular basis generators
//		• Profiles: Gram–Schmidt log-norm charts rendered to HTML
//
// Under the hood, everything is organized under five subpackages:
//
//	numeric/ — Value[T] contract, backends, Parse/Round/Dot helpers
//	matrix/  — Permuted[T], SortPermutation, Eliminate
//	lattice/ — Basis[T], BuildGram, Reduce, Stats, GSNorms/GSProfile, ReadVectors
//	builder/ — Constructor-based basis fixtures (Identity, Uniform, Knapsack, UnitUpper)
//	profile/ — WriteChart for Gram–Schmidt profiles
//
// Quick example:
//
//	b, _ := lattice.FromInts[numeric.Rat]([][]int64{{1, 1}, {2, 1}})
//	res, _ := lattice.Reduce(b, 0)
//	// res.Status == matrix.StatusSuccess, b.Reduced() == [[1 0] [0 1]]
//
// See examples/ for a knapsack instance solved end to end.
//
//	go get github.com/katalvlaran/lvlnum
package lvlnum
