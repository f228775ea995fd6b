// SPDX-License-Identifier: MIT
// Package: lvlnum/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg once, runs cons in
//     order, stacks their rows.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical rows.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/lattice"
	"github.com/katalvlaran/lvlnum/numeric"
)

// Constructor produces basis rows from the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw randomness only from cfg.rng, in a documented order.
//   - Return rows of one common length.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(cfg builderConfig) ([][]int64, error)

// Build resolves the configuration from bopts and applies all constructors
// in order, concatenating their rows. Every row of the result has the same
// length; a constructor breaking that yields ErrConstructFailed.
//
// Errors:
//   - Constructor errors wrapped with "Build: %w".
//   - ErrConstructFailed for a nil constructor or a row length mismatch.
//
// Complexity:
//   - Σ cost of each constructor; wrapper overhead O(total rows).
func Build(bopts []BuilderOption, cons ...Constructor) ([][]int64, error) {
	cfg := newBuilderConfig(bopts...)

	var rows [][]int64
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuild, i, ErrConstructFailed)
		}
		part, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuild, err)
		}
		for _, r := range part {
			if len(rows) > 0 && len(r) != len(rows[0]) {
				return nil, fmt.Errorf("%s: constructor %d: row length %d, want %d: %w",
					MethodBuild, i, len(r), len(rows[0]), ErrConstructFailed)
			}
			rows = append(rows, r)
		}
	}

	return rows, nil
}

// BuildBasis is Build followed by Convert and lattice.FromVectors.
func BuildBasis[T numeric.Value[T]](bopts []BuilderOption, cons ...Constructor) (*lattice.Basis[T], error) {
	rows, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return lattice.FromVectors(Convert[T](rows))
}

// Convert lifts integer rows into backend T.
// Complexity: O(Σ len(rows[i])).
func Convert[T numeric.Value[T]](rows [][]int64) [][]T {
	out := make([][]T, len(rows))
	for i, r := range rows {
		out[i] = numeric.FromInts[T](r)
	}

	return out
}

// =============================================================================
// Generators - implemented in impl_*.go
// =============================================================================
//
// Identity(n)                         n×n standard basis.
// Uniform(n, length, bound)           n×length, entries in [-bound, bound]; rng.
// Knapsack(weights, scale)            n×(n+1) rows e_i ‖ scale·w_i.
// RandomKnapsack(n, bits, scale)      Knapsack over weights in [1, 2^bits); rng.
// UnitUpper(n, bound)                 n×n, unit diagonal, upper part in [-bound, bound]; rng.
