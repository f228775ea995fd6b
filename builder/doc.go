// Package builder provides deterministic generators of integer lattice bases
// for tests, benchmarks and examples. It lives alongside the lattice and
// matrix packages to centralize fixture construction, seeding and
// validation, keeping test suites short and reproducible.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the random stream used by stochastic generators.
//   - Randomness:
//     – WithSeed:       a SHAKE-128 keyed stream (golang.org/x/crypto/sha3), so the
//     same seed yields the same basis on every platform and Go release.
//     – WithRand:       a caller supplied *rand.Rand.
//   - Generators (Constructor implementations):
//     – Identity:       the standard basis e_0..e_{n-1}.
//     – Uniform:        n×length entries uniform in [-bound, bound].
//     – Knapsack:       the subset-sum embedding e_i ‖ scale·w_i.
//     – RandomKnapsack: Knapsack over random weights of a given bit size.
//     – UnitUpper:      upper triangular, unit diagonal (determinant 1).
//   - Assembly:
//     – Build:          run constructors in order and stack their rows.
//     – BuildBasis:     Build, then convert into a lattice.Basis[T].
//     – Convert:        [][]int64 → [][]T for any numeric backend.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors for invalid build parameters, wrapping
//     sentinels (ErrTooFewVectors, ErrInvalidBound, ErrNeedRandSource, ...).
//   - Determinism: equal seed, parameters and constructor order give equal rows.
//
// See individual function documentation for contracts and complexity.
package builder
