package numeric

import (
	"math/big"
)

// Rational is exact arithmetic over *big.Rat. Values are never modified in
// place; every operation returns a freshly allocated result.
type Rational struct{}

var _ Arithmetic[*big.Rat] = Rational{}

func (Rational) Add(a, b *big.Rat) *big.Rat      { return new(big.Rat).Add(a, b) }
func (Rational) Subtract(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rational) Multiply(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (Rational) Negate(a *big.Rat) *big.Rat      { return new(big.Rat).Neg(a) }

func (Rational) Divide(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ErrDivideByZero
	}
	return new(big.Rat).Quo(a, b), nil
}

// maxRatExponent caps integer powers so a hostile exponent cannot exhaust
// memory.
const maxRatExponent = 4096

// Power is exact for integer exponents. Anything else is reported as not
// representable. Zero to any negative power is a division by zero.
func (r Rational) Power(a, b *big.Rat) (*big.Rat, error) {
	if a.Sign() == 0 && b.Sign() < 0 {
		return nil, ErrDivideByZero
	}
	if !b.IsInt() {
		if a.Sign() == 0 && b.Sign() > 0 {
			return new(big.Rat), nil
		}
		if a.Cmp(big.NewRat(1, 1)) == 0 {
			return big.NewRat(1, 1), nil
		}
		return nil, ErrNotRepresentable
	}
	if !b.Num().IsInt64() {
		return nil, ErrNotRepresentable
	}
	e := b.Num().Int64()
	neg := e < 0
	if neg {
		e = -e
	}
	if e > maxRatExponent {
		return nil, ErrNotRepresentable
	}
	num := new(big.Int).Exp(a.Num(), big.NewInt(e), nil)
	den := new(big.Int).Exp(a.Denom(), big.NewInt(e), nil)
	if neg {
		if num.Sign() == 0 {
			return nil, ErrDivideByZero
		}
		num, den = den, num
	}
	return new(big.Rat).SetFrac(num, den), nil
}

func (Rational) Compare(a, b *big.Rat) int    { return a.Cmp(b) }
func (Rational) Equal(a, b *big.Rat) bool     { return a.Cmp(b) == 0 }
func (Rational) Sign(a *big.Rat) int          { return a.Sign() }
func (Rational) IsInteger(a *big.Rat) bool    { return a.IsInt() }
func (Rational) IsNonNegative(a *big.Rat) bool { return a.Sign() >= 0 }
func (Rational) FromInt64(v int64) *big.Rat   { return new(big.Rat).SetInt64(v) }

// Parse accepts anything big.Rat accepts: "3", "2.5", "-1/3".
func (Rational) Parse(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, ErrSyntax
	}
	return r, nil
}

// Format renders integers without a denominator and everything else as a/b.
func (Rational) Format(v *big.Rat) string {
	if v.IsInt() {
		return v.Num().String()
	}
	return v.RatString()
}
