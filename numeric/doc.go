// SPDX-License-Identifier: MIT

// Package numeric defines the scalar contract every algorithm in lvlnum is
// written against, together with the concrete backends it ships with.
//
// What & Why:
//
//	Gaussian elimination and lattice basis reduction must behave identically
//	whether the arithmetic is exact (rationals) or rounded (machine floats,
//	fixed point, big floats). Value[T] captures exactly the operations those
//	algorithms need, so one generic implementation serves every backend.
//
// Backends:
//
//	Float64, Float32 — Native[F] over golang.org/x/exp/constraints.Float.
//	Extended         — "long double": big.Float at a 64-bit mantissa.
//	BigFloat         — big.Float, DefaultBigFloatPrec bits unless told otherwise.
//	Rat              — exact big.Rat.
//	Fixed            — Q31.32 fixed point in an int64, saturating.
//	Int32            — saturating 32-bit integer, floor division.
//
// Ownership:
//
//	Every method returns a fresh value and never mutates its receiver or its
//	argument, so two logical scalars never share backend state. Big backends
//	hold pointers that are written only at construction time.
//
// Usage:
//
//	x, err := numeric.Parse[numeric.Rat]("3/4")
//	if err != nil { ... }
//	y := x.Mul(x).Add(x.One())      // 25/16
//	numeric.NonZero(y, 1e-9)        // true
package numeric
