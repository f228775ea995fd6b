// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"math/big"
)

// DefaultBigFloatPrec is the mantissa precision (bits) of BigFloat values
// created without an explicit precision.
const DefaultBigFloatPrec uint = 256

// ExtendedPrec is the mantissa precision of Extended, matching the x87
// 80-bit "long double".
const ExtendedPrec uint = 64

// BigFloat is an arbitrary-precision binary float. The precision of a result
// is the larger of its operands' precisions (DefaultBigFloatPrec for zero
// values and parsed input). Quo 0/0 panics with big.ErrNaN.
type BigFloat struct {
	f *big.Float
}

// Extended is a fixed 64-bit-mantissa float, the portable stand-in for a C
// long double.
type Extended struct {
	f *big.Float
}

var (
	_ Value[BigFloat] = BigFloat{}
	_ Value[Extended] = Extended{}
)

// NewBigFloat returns x at the given precision (0 means DefaultBigFloatPrec).
func NewBigFloat(x float64, prec uint) BigFloat {
	if prec == 0 {
		prec = DefaultBigFloatPrec
	}

	return BigFloat{f: new(big.Float).SetPrec(prec).SetFloat64(x)}
}

// NewExtended returns x as an Extended.
func NewExtended(x float64) Extended {
	return Extended{f: new(big.Float).SetPrec(ExtendedPrec).SetFloat64(x)}
}

// ---------- shared big.Float kernels ----------
//
// Every kernel takes read-only operands and returns a fresh *big.Float. A
// fixed precision of 0 means "max of operand precisions, or the default".

func bfView(x *big.Float) *big.Float {
	if x == nil {
		return new(big.Float)
	}

	return x
}

func bfPrec(fixed uint, xs ...*big.Float) uint {
	if fixed != 0 {
		return fixed
	}
	var p uint
	for _, x := range xs {
		if x != nil && x.Prec() > p {
			p = x.Prec()
		}
	}
	if p == 0 {
		p = DefaultBigFloatPrec
	}

	return p
}

func bfNew(prec uint) *big.Float { return new(big.Float).SetPrec(prec) }

func bfAdd(x, y *big.Float, fixed uint) *big.Float {
	return bfNew(bfPrec(fixed, x, y)).Add(bfView(x), bfView(y))
}

func bfSub(x, y *big.Float, fixed uint) *big.Float {
	return bfNew(bfPrec(fixed, x, y)).Sub(bfView(x), bfView(y))
}

func bfMul(x, y *big.Float, fixed uint) *big.Float {
	return bfNew(bfPrec(fixed, x, y)).Mul(bfView(x), bfView(y))
}

func bfQuo(x, y *big.Float, fixed uint) *big.Float {
	return bfNew(bfPrec(fixed, x, y)).Quo(bfView(x), bfView(y))
}

func bfNeg(x *big.Float, fixed uint) *big.Float {
	return bfNew(bfPrec(fixed, x)).Neg(bfView(x))
}

func bfAbs(x *big.Float, fixed uint) *big.Float {
	return bfNew(bfPrec(fixed, x)).Abs(bfView(x))
}

func bfFloor(x *big.Float, fixed uint) *big.Float {
	v := bfView(x)
	out := bfNew(bfPrec(fixed, x))
	if v.IsInf() || v.IsInt() {
		return out.Set(v)
	}
	i, _ := v.Int(nil) // truncates toward zero
	if v.Sign() < 0 {
		i.Sub(i, big.NewInt(1))
	}

	return out.SetInt(i)
}

func bfMulUint(x *big.Float, k uint64, fixed uint) *big.Float {
	p := bfPrec(fixed, x)
	return bfNew(p).Mul(bfView(x), bfNew(p).SetUint64(k))
}

func bfCmpFloat64(x *big.Float, f float64) int {
	if math.IsNaN(f) {
		return 0
	}

	return bfView(x).Cmp(new(big.Float).SetFloat64(f))
}

func bfParse(s string, prec uint, tag string) (*big.Float, error) {
	f, ok := bfNew(prec).SetString(s)
	if !ok {
		return nil, numericErrorf(tag, s, ErrSyntax)
	}
	if f.IsInf() {
		return nil, numericErrorf(tag, s, ErrRange)
	}

	return f, nil
}

func bfFloat64(x *big.Float) float64 {
	f, _ := bfView(x).Float64()
	return f
}

func bfString(x *big.Float) string { return bfView(x).Text('g', 20) }

// ---------- BigFloat ----------

// Prec returns the mantissa precision of a (DefaultBigFloatPrec for the zero value).
func (a BigFloat) Prec() uint { return bfPrec(0, a.f) }

// Big returns a copy of the value as a *big.Float.
func (a BigFloat) Big() *big.Float { return bfNew(a.Prec()).Set(bfView(a.f)) }

func (a BigFloat) Zero() BigFloat { return BigFloat{} }
func (a BigFloat) One() BigFloat  { return BigFloat{f: bfNew(a.Prec()).SetInt64(1)} }
func (a BigFloat) Clone() BigFloat {
	return BigFloat{f: bfNew(a.Prec()).Set(bfView(a.f))}
}

func (a BigFloat) FromInt64(n int64) BigFloat {
	return BigFloat{f: bfNew(a.Prec()).SetInt64(n)}
}

// FromFloat64 converts f; NaN maps to zero.
func (a BigFloat) FromFloat64(f float64) BigFloat {
	if math.IsNaN(f) {
		return BigFloat{}
	}

	return BigFloat{f: bfNew(a.Prec()).SetFloat64(f)}
}

func (a BigFloat) Parse(s string) (BigFloat, error) {
	f, err := bfParse(s, a.Prec(), "BigFloat")
	if err != nil {
		return BigFloat{}, err
	}

	return BigFloat{f: f}, nil
}

func (a BigFloat) Add(b BigFloat) BigFloat   { return BigFloat{f: bfAdd(a.f, b.f, 0)} }
func (a BigFloat) Sub(b BigFloat) BigFloat   { return BigFloat{f: bfSub(a.f, b.f, 0)} }
func (a BigFloat) Mul(b BigFloat) BigFloat   { return BigFloat{f: bfMul(a.f, b.f, 0)} }
func (a BigFloat) Quo(b BigFloat) BigFloat   { return BigFloat{f: bfQuo(a.f, b.f, 0)} }
func (a BigFloat) Neg() BigFloat             { return BigFloat{f: bfNeg(a.f, 0)} }
func (a BigFloat) Abs() BigFloat             { return BigFloat{f: bfAbs(a.f, 0)} }
func (a BigFloat) Floor() BigFloat           { return BigFloat{f: bfFloor(a.f, 0)} }
func (a BigFloat) MulUint(k uint64) BigFloat { return BigFloat{f: bfMulUint(a.f, k, 0)} }
func (a BigFloat) Cmp(b BigFloat) int        { return bfView(a.f).Cmp(bfView(b.f)) }
func (a BigFloat) CmpFloat64(f float64) int  { return bfCmpFloat64(a.f, f) }
func (a BigFloat) Sign() int                 { return bfView(a.f).Sign() }
func (a BigFloat) Float64() float64          { return bfFloat64(a.f) }
func (a BigFloat) String() string            { return bfString(a.f) }

// ---------- Extended ----------

// Big returns a copy of the value as a *big.Float.
func (a Extended) Big() *big.Float { return bfNew(ExtendedPrec).Set(bfView(a.f)) }

func (a Extended) Zero() Extended { return Extended{} }
func (a Extended) One() Extended  { return Extended{f: bfNew(ExtendedPrec).SetInt64(1)} }
func (a Extended) Clone() Extended {
	return Extended{f: bfNew(ExtendedPrec).Set(bfView(a.f))}
}

func (a Extended) FromInt64(n int64) Extended {
	return Extended{f: bfNew(ExtendedPrec).SetInt64(n)}
}

// FromFloat64 converts f; NaN maps to zero.
func (a Extended) FromFloat64(f float64) Extended {
	if math.IsNaN(f) {
		return Extended{}
	}

	return Extended{f: bfNew(ExtendedPrec).SetFloat64(f)}
}

func (a Extended) Parse(s string) (Extended, error) {
	f, err := bfParse(s, ExtendedPrec, "Extended")
	if err != nil {
		return Extended{}, err
	}

	return Extended{f: f}, nil
}

func (a Extended) Add(b Extended) Extended {
	return Extended{f: bfAdd(a.f, b.f, ExtendedPrec)}
}

func (a Extended) Sub(b Extended) Extended {
	return Extended{f: bfSub(a.f, b.f, ExtendedPrec)}
}

func (a Extended) Mul(b Extended) Extended {
	return Extended{f: bfMul(a.f, b.f, ExtendedPrec)}
}

func (a Extended) Quo(b Extended) Extended {
	return Extended{f: bfQuo(a.f, b.f, ExtendedPrec)}
}

func (a Extended) Neg() Extended   { return Extended{f: bfNeg(a.f, ExtendedPrec)} }
func (a Extended) Abs() Extended   { return Extended{f: bfAbs(a.f, ExtendedPrec)} }
func (a Extended) Floor() Extended { return Extended{f: bfFloor(a.f, ExtendedPrec)} }

func (a Extended) MulUint(k uint64) Extended {
	return Extended{f: bfMulUint(a.f, k, ExtendedPrec)}
}

func (a Extended) Cmp(b Extended) int       { return bfView(a.f).Cmp(bfView(b.f)) }
func (a Extended) CmpFloat64(f float64) int { return bfCmpFloat64(a.f, f) }
func (a Extended) Sign() int                { return bfView(a.f).Sign() }
func (a Extended) Float64() float64         { return bfFloat64(a.f) }
func (a Extended) String() string           { return bfString(a.f) }
