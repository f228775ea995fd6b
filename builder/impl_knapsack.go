// SPDX-License-Identifier: MIT
// Package: lvlnum/builder
//
// impl_knapsack.go - subset-sum (knapsack) lattice embeddings.
//
// Canonical model:
//   - Row i is e_i followed by scale·w_i (length n+1).
//   - A lattice vector whose last coordinate is 0 is a signed combination
//     Σ x_i·e_i with Σ x_i·w_i = 0; a large scale pushes every short reduced
//     vector into that sublattice.
//
// Contract:
//   - len(weights) ≥ 1 (else ErrTooFewVectors).
//   - scale ≤ 0 means DefaultKnapsackScale.
//   - every |scale·w_i| must fit in int64 (else ErrInvalidBound).
//   - RandomKnapsack additionally needs MinWeightBits ≤ bits ≤ MaxWeightBits
//     and cfg.rng; weights are drawn in index order.
//
// Complexity:
//   - Time/Space O(n²).

package builder

import "math"

// Knapsack returns a Constructor for the embedding of the given weights.
// The weights slice is copied when the constructor runs.
func Knapsack(weights []int64, scale int64) Constructor {
	return func(cfg builderConfig) ([][]int64, error) {
		return knapsackRows(MethodKnapsack, weights, scale)
	}
}

// RandomKnapsack returns a Constructor for the embedding of n random weights
// uniform in [1, 2^bits).
func RandomKnapsack(n, bits int, scale int64) Constructor {
	return func(cfg builderConfig) ([][]int64, error) {
		if err := validateMin(MethodRandomKnapsack, "n", n, MinVectors); err != nil {
			return nil, err
		}
		if bits < MinWeightBits || bits > MaxWeightBits {
			return nil, builderErrorf(MethodRandomKnapsack, ErrInvalidBound, "bits=%d not in [%d,%d]", bits, MinWeightBits, MaxWeightBits)
		}
		if err := validateRand(MethodRandomKnapsack, cfg); err != nil {
			return nil, err
		}

		span := int64(1)<<uint(bits) - 1
		weights := make([]int64, n)
		for i := range weights {
			weights[i] = 1 + cfg.rng.Int63n(span)
		}

		return knapsackRows(MethodRandomKnapsack, weights, scale)
	}
}

// knapsackRows builds e_i ‖ scale·w_i after validation.
func knapsackRows(method string, weights []int64, scale int64) ([][]int64, error) {
	n := len(weights)
	if err := validateMin(method, "len(weights)", n, MinVectors); err != nil {
		return nil, err
	}
	if scale <= 0 {
		scale = DefaultKnapsackScale
	}

	rows := make([][]int64, n)
	for i, w := range weights {
		if w == math.MinInt64 || abs64(w) > math.MaxInt64/scale {
			return nil, builderErrorf(method, ErrInvalidBound, "weight %d: %d·%d overflows int64", i, scale, w)
		}
		rows[i] = make([]int64, n+1)
		rows[i][i] = 1
		rows[i][n] = scale * w
	}

	return rows, nil
}

// abs64 returns |x| for x > MinInt64.
func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
