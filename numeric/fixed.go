// SPDX-License-Identifier: MIT

package numeric

import (
	"cmp"
	"math"
	"math/big"
	"math/bits"
	"strconv"
)

// FixedFracBits is the number of fractional bits of Fixed (Q31.32).
const FixedFracBits = 32

const (
	fixedOne      = int64(1) << FixedFracBits
	fixedFracMask = fixedOne - 1
	fixedIntLimit = int64(1) << (63 - FixedFracBits) // |integer part| must stay below this
)

// Fixed is a signed Q31.32 fixed-point number stored in an int64. Products and
// quotients are computed with 128-bit intermediates and truncated toward zero;
// every overflow saturates to the largest representable magnitude.
type Fixed struct {
	raw int64
}

var _ Value[Fixed] = Fixed{}

// FixedFromRaw builds a Fixed from its raw Q31.32 representation.
func FixedFromRaw(raw int64) Fixed { return Fixed{raw: raw} }

// Raw returns the underlying Q31.32 representation.
func (a Fixed) Raw() int64 { return a.raw }

// satSigned clamps a magnitude with a sign into int64.
func satSigned(mag uint64, neg bool) int64 {
	if neg {
		if mag > 1<<63 {
			return math.MinInt64
		}
		return int64(-mag) // -(1<<63) wraps onto MinInt64 exactly
	}
	if mag > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(mag)
}

// magnitude splits x into |x| and its sign.
func magnitude(x int64) (uint64, bool) {
	if x < 0 {
		return uint64(-x), true // MinInt64 becomes 1<<63, as wanted
	}

	return uint64(x), false
}

func (a Fixed) Zero() Fixed  { return Fixed{} }
func (a Fixed) One() Fixed   { return Fixed{raw: fixedOne} }
func (a Fixed) Clone() Fixed { return a }

func (a Fixed) FromInt64(n int64) Fixed {
	switch {
	case n >= fixedIntLimit:
		return Fixed{raw: math.MaxInt64}
	case n < -fixedIntLimit:
		return Fixed{raw: math.MinInt64}
	default:
		return Fixed{raw: n << FixedFracBits}
	}
}

// FromFloat64 scales f by 2^32 and truncates toward negative infinity; NaN maps to zero.
func (a Fixed) FromFloat64(f float64) Fixed {
	if math.IsNaN(f) {
		return Fixed{}
	}
	s := math.Floor(math.Ldexp(f, FixedFracBits))
	switch {
	case s >= math.MaxInt64:
		return Fixed{raw: math.MaxInt64}
	case s <= math.MinInt64:
		return Fixed{raw: math.MinInt64}
	default:
		return Fixed{raw: int64(s)}
	}
}

// Parse accepts decimals, exponents and fractions ("1.25", "-3e2", "1/3").
// The value is rounded toward negative infinity onto the 2^-32 grid.
func (a Fixed) Parse(s string) (Fixed, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Fixed{}, numericErrorf("Fixed", s, ErrSyntax)
	}
	scaled := new(big.Rat).Mul(r, new(big.Rat).SetInt64(fixedOne))
	q := new(big.Int).Div(scaled.Num(), scaled.Denom()) // floor, denominator > 0
	if !q.IsInt64() {
		return Fixed{}, numericErrorf("Fixed", s, ErrRange)
	}

	return Fixed{raw: q.Int64()}, nil
}

func (a Fixed) Add(b Fixed) Fixed {
	s := a.raw + b.raw
	if (a.raw >= 0) == (b.raw >= 0) && (s >= 0) != (a.raw >= 0) {
		return Fixed{raw: satSigned(math.MaxUint64, a.raw < 0)}
	}

	return Fixed{raw: s}
}

func (a Fixed) Sub(b Fixed) Fixed {
	d := a.raw - b.raw
	if (a.raw^b.raw)&(a.raw^d) < 0 {
		return Fixed{raw: satSigned(math.MaxUint64, a.raw < 0)}
	}

	return Fixed{raw: d}
}

func (a Fixed) Mul(b Fixed) Fixed {
	ua, na := magnitude(a.raw)
	ub, nb := magnitude(b.raw)
	hi, lo := bits.Mul64(ua, ub)
	if hi>>FixedFracBits != 0 {
		return Fixed{raw: satSigned(math.MaxUint64, na != nb)}
	}

	return Fixed{raw: satSigned(hi<<(64-FixedFracBits)|lo>>FixedFracBits, na != nb)}
}

// Quo divides with a 128-bit numerator. Division by zero saturates toward the
// sign of a; 0/0 is 0.
func (a Fixed) Quo(b Fixed) Fixed {
	ua, na := magnitude(a.raw)
	ub, nb := magnitude(b.raw)
	if ub == 0 {
		if ua == 0 {
			return Fixed{}
		}
		return Fixed{raw: satSigned(math.MaxUint64, na)}
	}
	hi, lo := ua>>(64-FixedFracBits), ua<<FixedFracBits
	if hi >= ub {
		return Fixed{raw: satSigned(math.MaxUint64, na != nb)}
	}
	q, _ := bits.Div64(hi, lo, ub)

	return Fixed{raw: satSigned(q, na != nb)}
}

func (a Fixed) Neg() Fixed {
	if a.raw == math.MinInt64 {
		return Fixed{raw: math.MaxInt64}
	}

	return Fixed{raw: -a.raw}
}

func (a Fixed) Abs() Fixed {
	if a.raw < 0 {
		return a.Neg()
	}

	return a
}

// Floor clears the fractional bits; two's complement makes that a floor.
func (a Fixed) Floor() Fixed { return Fixed{raw: a.raw &^ fixedFracMask} }

func (a Fixed) MulUint(k uint64) Fixed {
	ua, na := magnitude(a.raw)
	hi, lo := bits.Mul64(ua, k)
	if hi != 0 {
		return Fixed{raw: satSigned(math.MaxUint64, na)}
	}

	return Fixed{raw: satSigned(lo, na)}
}

func (a Fixed) Cmp(b Fixed) int { return cmp.Compare(a.raw, b.raw) }

// CmpFloat64 compares exactly: f is moved onto the raw grid, which is an exact
// power-of-two scaling.
func (a Fixed) CmpFloat64(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= float64(fixedIntLimit):
		return -1
	case f < -float64(fixedIntLimit):
		return 1
	}
	s := math.Ldexp(f, FixedFracBits)
	fl := math.Floor(s)
	if c := cmp.Compare(a.raw, int64(fl)); c != 0 {
		return c
	}
	if s > fl {
		return -1
	}

	return 0
}

func (a Fixed) Sign() int { return cmp.Compare(a.raw, 0) }

func (a Fixed) Float64() float64 { return math.Ldexp(float64(a.raw), -FixedFracBits) }

func (a Fixed) String() string { return strconv.FormatFloat(a.Float64(), 'g', -1, 64) }
