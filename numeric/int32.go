// SPDX-License-Identifier: MIT

package numeric

import (
	"cmp"
	"errors"
	"math"
	"strconv"
)

// Int32 is a saturating 32-bit integer backend. Results that do not fit clamp
// to math.MinInt32/math.MaxInt32 instead of wrapping. Quo is floor division,
// so Floor is the identity and the elimination kernels stay on the integers.
//
// Int32 is coarse: Gram–Schmidt coefficients are truncated, so it is suited to
// elimination over exactly divisible data rather than to basis reduction.
type Int32 int32

var _ Value[Int32] = Int32(0)

// sat32 clamps an int64 into the Int32 range.
func sat32(x int64) Int32 {
	switch {
	case x > math.MaxInt32:
		return math.MaxInt32
	case x < math.MinInt32:
		return math.MinInt32
	default:
		return Int32(x)
	}
}

func (a Int32) Zero() Int32             { return 0 }
func (a Int32) One() Int32              { return 1 }
func (a Int32) FromInt64(n int64) Int32 { return sat32(n) }
func (a Int32) Clone() Int32            { return a }

// FromFloat64 floors f and saturates; NaN maps to zero.
func (a Int32) FromFloat64(f float64) Int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return Int32(math.Floor(f))
	}
}

// Parse accepts base-10 integers only.
func (a Int32) Parse(s string) (Int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, numericErrorf("Int32", s, ErrRange)
		}
		return 0, numericErrorf("Int32", s, ErrSyntax)
	}

	return Int32(n), nil
}

func (a Int32) Add(b Int32) Int32 { return sat32(int64(a) + int64(b)) }
func (a Int32) Sub(b Int32) Int32 { return sat32(int64(a) - int64(b)) }
func (a Int32) Mul(b Int32) Int32 { return sat32(int64(a) * int64(b)) }

// Quo is floor division. Division by zero saturates toward the sign of a;
// 0/0 is 0.
func (a Int32) Quo(b Int32) Int32 {
	if b == 0 {
		switch {
		case a > 0:
			return math.MaxInt32
		case a < 0:
			return math.MinInt32
		default:
			return 0
		}
	}
	x, y := int64(a), int64(b)
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}

	return sat32(q)
}

func (a Int32) Neg() Int32 { return sat32(-int64(a)) }

func (a Int32) Abs() Int32 {
	if a < 0 {
		return a.Neg()
	}

	return a
}

func (a Int32) Floor() Int32 { return a }

func (a Int32) MulUint(k uint64) Int32 {
	if k > math.MaxInt32 {
		switch {
		case a > 0:
			return math.MaxInt32
		case a < 0:
			return math.MinInt32
		default:
			return 0
		}
	}

	return sat32(int64(a) * int64(k))
}

func (a Int32) Cmp(b Int32) int          { return cmp.Compare(a, b) }
func (a Int32) CmpFloat64(f float64) int { return cmp.Compare(float64(a), f) }
func (a Int32) Sign() int                { return cmp.Compare(a, 0) }
func (a Int32) Float64() float64         { return float64(a) }
func (a Int32) String() string           { return strconv.FormatInt(int64(a), 10) }
