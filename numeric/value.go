// SPDX-License-Identifier: MIT

package numeric

// Value is the scalar contract. T is the implementing type itself:
//
//	func Eliminate[T numeric.Value[T]](...)
//
// Constructors (Zero, One, FromInt64, FromFloat64, Parse) are ordinary
// methods so they can be invoked on the zero value of T inside generic code.
//
// Guarantees a backend must keep:
//   - Cmp is a total order; CmpFloat64 agrees with it for representable values.
//   - Floor rounds toward negative infinity.
//   - MulUint is exact for integer and rational backends; floating backends
//     round as they natively do; bounded backends saturate instead of wrapping.
//   - No method mutates its receiver or its argument.
type Value[T any] interface {
	Zero() T
	One() T
	FromInt64(n int64) T
	FromFloat64(f float64) T
	Parse(s string) (T, error)
	Clone() T

	Add(b T) T
	Sub(b T) T
	Mul(b T) T
	Quo(b T) T
	Neg() T
	Abs() T
	Floor() T
	MulUint(k uint64) T

	Cmp(b T) int
	CmpFloat64(f float64) int
	Sign() int

	Float64() float64
	String() string
}

// half is the size-reduction bound and the rounding threshold.
const half = 0.5

// Parse reads a decimal string into T.
func Parse[T Value[T]](s string) (T, error) {
	var z T
	return z.Parse(s)
}

// MustParse is Parse for literals in tests and examples; it panics on error.
func MustParse[T Value[T]](s string) T {
	v, err := Parse[T](s)
	if err != nil {
		panic(err)
	}

	return v
}

// ParseAll parses every string, stopping at the first failure.
func ParseAll[T Value[T]](ss ...string) ([]T, error) {
	out := make([]T, len(ss))
	var err error
	for i, s := range ss {
		if out[i], err = Parse[T](s); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// FromInt64 converts n into T.
func FromInt64[T Value[T]](n int64) T {
	var z T
	return z.FromInt64(n)
}

// FromInts converts a slice of integers into a fresh slice of T.
func FromInts[T Value[T]](ns []int64) []T {
	out := make([]T, len(ns))
	for i, n := range ns {
		out[i] = FromInt64[T](n)
	}

	return out
}

// Less reports a < b.
func Less[T Value[T]](a, b T) bool { return a.Cmp(b) < 0 }

// LessEq reports a ≤ b.
func LessEq[T Value[T]](a, b T) bool { return a.Cmp(b) <= 0 }

// LessFloat64 reports a < f.
func LessFloat64[T Value[T]](a T, f float64) bool { return a.CmpFloat64(f) < 0 }

// LessEqFloat64 reports a ≤ f.
func LessEqFloat64[T Value[T]](a T, f float64) bool { return a.CmpFloat64(f) <= 0 }

// NonZero reports whether v is distinguishable from zero at tolerance tol,
// i.e. |v| > tol. NonZero(v, tol) is false iff |v| ≤ tol.
func NonZero[T Value[T]](v T, tol float64) bool {
	return v.Abs().CmpFloat64(tol) > 0
}

// Round returns the integer nearest to v: q = Floor(v), then q+1 when
// v-q > 1/2. An exact tie stays on Floor(v).
func Round[T Value[T]](v T) T {
	q := v.Floor()
	if v.Sub(q).CmpFloat64(half) > 0 {
		q = q.Add(q.One())
	}

	return q
}

// Dot returns the inner product of two equally long vectors.
// The caller guarantees len(a) == len(b).
func Dot[T Value[T]](a, b []T) T {
	var acc T
	acc = acc.Zero()
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}

	return acc
}

// CloneVector deep-copies a vector so that no element is shared.
func CloneVector[T Value[T]](v []T) []T {
	out := make([]T, len(v))
	for i := range v {
		out[i] = v[i].Clone()
	}

	return out
}
