/*
File   : nano/value/number.go
Package: value

Number implements §3/§4.D's arbitrary-precision signed decimal. No
third-party decimal library appears anywhere in the retrieval pack (the
teacher's objects.Integer/objects.Float are fixed-width int64/float64), so
Number is built on the standard library's math/big.Rat, which already
gives exact addition, subtraction, and multiplication; division is the
only inexact operation and is rounded per §4.D/§8 to 10 fractional digits,
half-even (banker's rounding).
*/
package value

import (
	"math/big"
	"strings"
)

// divisionScale is the number of fractional digits division rounds to
// (§4.D, §8): 1/3 == 0.3333333333.
const divisionScale = 10

// Number wraps an exact rational value. Integers are just Rats with
// denominator 1; NANO's grammar never produces a rational literal
// directly, but results of / are rounded back to a finite decimal before
// being stored, so every live Number is representable with a bounded
// number of decimal digits.
type Number struct {
	Value *big.Rat
}

func NewNumberFromInt64(n int64) *Number {
	return &Number{Value: new(big.Rat).SetInt64(n)}
}

// NewNumberFromDecimalText parses source digits (optionally with a
// fractional part) scanned by the lexer (§4.A) into an exact Number.
func NewNumberFromDecimalText(text string) (*Number, bool) {
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return nil, false
	}
	return &Number{Value: r}, true
}

func (n *Number) Kind() Kind    { return KindNumber }
func (n *Number) Truthy() bool  { return true } // even Number(0) is truthy, per §4.D

// String renders the plain-decimal form with a trailing ".0" stripped
// when the value is an integer (§4.D).
func (n *Number) String() string {
	s := n.Value.FloatString(decimalDigits(n.Value))
	return trimTrailingZeroFraction(s)
}

func (n *Number) Equal(o *Number) bool {
	return n.Value.Cmp(o.Value) == 0
}

func (n *Number) Cmp(o *Number) int {
	return n.Value.Cmp(o.Value)
}

func (n *Number) IsZero() bool {
	return n.Value.Sign() == 0
}

func (n *Number) Add(o *Number) *Number {
	return &Number{Value: new(big.Rat).Add(n.Value, o.Value)}
}

func (n *Number) Sub(o *Number) *Number {
	return &Number{Value: new(big.Rat).Sub(n.Value, o.Value)}
}

func (n *Number) Mul(o *Number) *Number {
	return &Number{Value: new(big.Rat).Mul(n.Value, o.Value)}
}

func (n *Number) Neg() *Number {
	return &Number{Value: new(big.Rat).Neg(n.Value)}
}

// Div divides n by o, rounding to divisionScale fractional digits using
// half-even (banker's) rounding, per §4.D/§8. The caller must check
// o.IsZero() first; division by zero is a runtime error, not panicked
// here.
func (n *Number) Div(o *Number) *Number {
	quotient := new(big.Rat).Quo(n.Value, o.Value)
	return &Number{Value: roundHalfEven(quotient, divisionScale)}
}

// roundHalfEven rounds r to scale fractional decimal digits using
// round-half-to-even, returning an exact Rat at that precision.
func roundHalfEven(r *big.Rat, scale int) *big.Rat {
	scaleFactor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	scaled := new(big.Rat).Mul(r, new(big.Rat).SetInt(scaleFactor))

	num := new(big.Int).Set(scaled.Num())
	den := new(big.Int).Set(scaled.Denom())

	quot, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 {
		twiceRem := new(big.Int).Mul(rem, big.NewInt(2))
		twiceRem.Abs(twiceRem)
		den.Abs(den)
		cmp := twiceRem.Cmp(den)
		roundUp := false
		switch {
		case cmp > 0:
			roundUp = true
		case cmp == 0:
			// Exactly halfway: round to even.
			roundUp = quot.Bit(0) == 1
		}
		if roundUp {
			if num.Sign() < 0 {
				quot.Sub(quot, big.NewInt(1))
			} else {
				quot.Add(quot, big.NewInt(1))
			}
		}
	}

	result := new(big.Rat).SetFrac(quot, scaleFactor)
	return result
}

// decimalDigits returns how many fractional digits are needed to render
// r exactly, capped at divisionScale (r is always exact at that scale or
// finer by construction once it has passed through Div).
func decimalDigits(r *big.Rat) int {
	if r.IsInt() {
		return 0
	}
	denom := new(big.Int).Set(r.Denom())
	digits := 0
	two, five := big.NewInt(2), big.NewInt(5)
	for denom.Cmp(big.NewInt(1)) != 0 && digits < divisionScale {
		if new(big.Int).Mod(denom, two).Sign() == 0 {
			denom.Div(denom, two)
		} else if new(big.Int).Mod(denom, five).Sign() == 0 {
			denom.Div(denom, five)
		} else {
			break
		}
		digits++
	}
	if digits == 0 {
		digits = divisionScale
	}
	return digits
}

func trimTrailingZeroFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		s = "0"
	}
	return s
}
