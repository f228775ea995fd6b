// SPDX-License-Identifier: MIT

package numeric

import (
	"cmp"
	"errors"
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Native wraps a machine floating-point type. Arithmetic is IEEE-754 with the
// rounding of F; Quo by zero yields ±Inf (or NaN for 0/0) as the hardware does.
type Native[F constraints.Float] struct {
	v F
}

// Float64 is the machine double backend.
type Float64 = Native[float64]

// Float32 is the single precision backend.
type Float32 = Native[float32]

var (
	_ Value[Float64] = Float64{}
	_ Value[Float32] = Float32{}
)

// F64 builds a Float64.
func F64(v float64) Float64 { return Float64{v: v} }

// F32 builds a Float32.
func F32(v float32) Float32 { return Float32{v: v} }

// NativeOf builds a Native[F] from its underlying value.
func NativeOf[F constraints.Float](v F) Native[F] { return Native[F]{v: v} }

// Value returns the underlying machine value.
func (a Native[F]) Value() F { return a.v }

// bitSize is 32 or 64 depending on F.
func (a Native[F]) bitSize() int { return int(unsafe.Sizeof(a.v)) * 8 }

func (a Native[F]) Zero() Native[F]                 { return Native[F]{} }
func (a Native[F]) One() Native[F]                  { return Native[F]{v: 1} }
func (a Native[F]) FromInt64(n int64) Native[F]     { return Native[F]{v: F(n)} }
func (a Native[F]) FromFloat64(f float64) Native[F] { return Native[F]{v: F(f)} }
func (a Native[F]) Clone() Native[F]                { return a }

// Parse accepts anything strconv.ParseFloat accepts except non-finite values.
func (a Native[F]) Parse(s string) (Native[F], error) {
	tag := "Float64"
	if a.bitSize() == 32 {
		tag = "Float32"
	}
	f, err := strconv.ParseFloat(s, a.bitSize())
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Native[F]{}, numericErrorf(tag, s, ErrRange)
		}
		return Native[F]{}, numericErrorf(tag, s, ErrSyntax)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Native[F]{}, numericErrorf(tag, s, ErrRange)
	}

	return Native[F]{v: F(f)}, nil
}

func (a Native[F]) Add(b Native[F]) Native[F] { return Native[F]{v: a.v + b.v} }
func (a Native[F]) Sub(b Native[F]) Native[F] { return Native[F]{v: a.v - b.v} }
func (a Native[F]) Mul(b Native[F]) Native[F] { return Native[F]{v: a.v * b.v} }
func (a Native[F]) Quo(b Native[F]) Native[F] { return Native[F]{v: a.v / b.v} }
func (a Native[F]) Neg() Native[F]            { return Native[F]{v: -a.v} }

func (a Native[F]) Abs() Native[F] {
	if a.v < 0 {
		return Native[F]{v: -a.v}
	}

	return a
}

func (a Native[F]) Floor() Native[F] { return Native[F]{v: F(math.Floor(float64(a.v)))} }

func (a Native[F]) MulUint(k uint64) Native[F] { return Native[F]{v: a.v * F(k)} }

func (a Native[F]) Cmp(b Native[F]) int { return cmp.Compare(a.v, b.v) }

// CmpFloat64 widens a to float64 first, which is exact for both widths.
func (a Native[F]) CmpFloat64(f float64) int { return cmp.Compare(float64(a.v), f) }

func (a Native[F]) Sign() int { return cmp.Compare(a.v, 0) }

func (a Native[F]) Float64() float64 { return float64(a.v) }

func (a Native[F]) String() string {
	return strconv.FormatFloat(float64(a.v), 'g', -1, a.bitSize())
}
