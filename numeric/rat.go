// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"math/big"
)

// Rat is the exact rational backend. The zero value is 0. Every operation
// allocates a fresh big.Rat; the stored pointer is never written after
// construction, so Rat values can be copied freely. Quo by zero panics, as
// big.Rat does.
type Rat struct {
	r *big.Rat
}

var _ Value[Rat] = Rat{}

// NewRat returns a/b. b must not be zero.
func NewRat(a, b int64) Rat { return Rat{r: big.NewRat(a, b)} }

// RatFromBig copies x into a Rat.
func RatFromBig(x *big.Rat) Rat {
	if x == nil {
		return Rat{}
	}

	return Rat{r: new(big.Rat).Set(x)}
}

// Big returns a copy of the value as a *big.Rat.
func (a Rat) Big() *big.Rat { return new(big.Rat).Set(a.rat()) }

// rat returns a read-only view of the value.
func (a Rat) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}

	return a.r
}

func (a Rat) Zero() Rat             { return Rat{} }
func (a Rat) One() Rat              { return Rat{r: big.NewRat(1, 1)} }
func (a Rat) FromInt64(n int64) Rat { return Rat{r: new(big.Rat).SetInt64(n)} }
func (a Rat) Clone() Rat            { return Rat{r: new(big.Rat).Set(a.rat())} }

// FromFloat64 converts f exactly; non-finite input maps to zero.
func (a Rat) FromFloat64(f float64) Rat {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return Rat{}
	}

	return Rat{r: r}
}

// Parse accepts "a/b", decimals and exponents ("0.125", "-3e2").
func (a Rat) Parse(s string) (Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, numericErrorf("Rat", s, ErrSyntax)
	}

	return Rat{r: r}, nil
}

func (a Rat) Add(b Rat) Rat { return Rat{r: new(big.Rat).Add(a.rat(), b.rat())} }
func (a Rat) Sub(b Rat) Rat { return Rat{r: new(big.Rat).Sub(a.rat(), b.rat())} }
func (a Rat) Mul(b Rat) Rat { return Rat{r: new(big.Rat).Mul(a.rat(), b.rat())} }
func (a Rat) Quo(b Rat) Rat { return Rat{r: new(big.Rat).Quo(a.rat(), b.rat())} }
func (a Rat) Neg() Rat      { return Rat{r: new(big.Rat).Neg(a.rat())} }
func (a Rat) Abs() Rat      { return Rat{r: new(big.Rat).Abs(a.rat())} }

// Floor uses Euclidean division; the denominator of a big.Rat is always
// positive, so the quotient is the floor.
func (a Rat) Floor() Rat {
	x := a.rat()
	q := new(big.Int).Div(x.Num(), x.Denom())

	return Rat{r: new(big.Rat).SetInt(q)}
}

func (a Rat) MulUint(k uint64) Rat {
	return Rat{r: new(big.Rat).Mul(a.rat(), new(big.Rat).SetUint64(k))}
}

func (a Rat) Cmp(b Rat) int { return a.rat().Cmp(b.rat()) }

// CmpFloat64 is exact for finite f; ±Inf compare as expected, NaN as equal.
func (a Rat) CmpFloat64(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case math.IsInf(f, 1):
		return -1
	case math.IsInf(f, -1):
		return 1
	}

	return a.rat().Cmp(new(big.Rat).SetFloat64(f))
}

func (a Rat) Sign() int { return a.rat().Sign() }

func (a Rat) Float64() float64 {
	f, _ := a.rat().Float64()
	return f
}

func (a Rat) String() string { return a.rat().RatString() }
