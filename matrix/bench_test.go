// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for elimination and permutation
// sorting, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/katalvlaran/lvlnum/numeric"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 32, 64}

// sinks to defeat dead-code elimination
var (
	sinkRank   int
	sinkStatus matrix.Status
	sinkErr    error
)

// randomPermuted returns an n×n matrix with entries in [-50, 50].
func randomPermuted[T numeric.Value[T]](b *testing.B, n int, seed int64) *matrix.Permuted[T] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewPermuted[T](n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, numeric.FromInt64[T](rng.Int63n(101)-50)); err != nil {
				b.Fatal(err)
			}
		}
	}

	return m
}

func BenchmarkEliminate_Float64(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, p := range allPolicies {
			b.Run(fmt.Sprintf("n=%d/%s", n, p), func(b *testing.B) {
				src := randomPermuted[numeric.Float64](b, n, 1337)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m := src.Copy()
					sinkRank, sinkStatus, sinkErr = matrix.Eliminate(m, p, matrix.DefaultZeroTol)
				}
			})
		}
	}
}

func BenchmarkEliminate_Rat(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 16} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randomPermuted[numeric.Rat](b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m := src.Copy()
				sinkRank, sinkStatus, sinkErr = matrix.Eliminate(m, matrix.PivotFull, 0)
			}
		})
	}
}

func BenchmarkSortPermutation(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 1024} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(7))
			keys := make([]numeric.Float64, n)
			for i := range keys {
				keys[i] = numeric.F64(rng.NormFloat64())
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				perm := matrix.IdentityPermutation(n)
				sinkErr = matrix.SortPermutation(perm, keys)
			}
		})
	}
}
