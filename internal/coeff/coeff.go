// Package coeff provides the coefficient ring abstraction polynomials are
// generic over, plus four concrete rings: exact integers, exact rationals,
// exact arbitrary-precision decimals, and approximate floating point.
package coeff

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Ring is the small algebraic interface a coefficient type must satisfy:
// an additive identity and zero test, addition, multiplication,
// negation, equality, and a display form. Addition and multiplication may
// fail (e.g. a fixed-precision ring's overflow), so both return an error.
type Ring[C any] interface {
	Zero() C
	IsZero(c C) bool
	Add(a, b C) (C, error)
	Mul(a, b C) (C, error)
	Neg(c C) C
	Equal(a, b C) bool
	String(c C) string
}

// BigIntRing is the exact integer ring, backed by math/big.Int. No
// third-party arbitrary-precision integer library appears anywhere in the
// examples pack, so this one ring is built on the standard library (see
// DESIGN.md).
type BigIntRing struct{}

func (BigIntRing) Zero() *big.Int { return new(big.Int) }

func (BigIntRing) IsZero(c *big.Int) bool { return c.Sign() == 0 }

func (BigIntRing) Add(a, b *big.Int) (*big.Int, error) {
	return new(big.Int).Add(a, b), nil
}

func (BigIntRing) Mul(a, b *big.Int) (*big.Int, error) {
	return new(big.Int).Mul(a, b), nil
}

func (BigIntRing) Neg(c *big.Int) *big.Int {
	return new(big.Int).Neg(c)
}

func (BigIntRing) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }

func (BigIntRing) String(c *big.Int) string { return c.String() }

// BigRatRing is the exact rational ring, backed by math/big.Rat.
type BigRatRing struct{}

func (BigRatRing) Zero() *big.Rat { return new(big.Rat) }

func (BigRatRing) IsZero(c *big.Rat) bool { return c.Sign() == 0 }

func (BigRatRing) Add(a, b *big.Rat) (*big.Rat, error) {
	return new(big.Rat).Add(a, b), nil
}

func (BigRatRing) Mul(a, b *big.Rat) (*big.Rat, error) {
	return new(big.Rat).Mul(a, b), nil
}

func (BigRatRing) Neg(c *big.Rat) *big.Rat {
	return new(big.Rat).Neg(c)
}

func (BigRatRing) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

func (BigRatRing) String(c *big.Rat) string { return c.RatString() }

// DecimalRing is the exact arbitrary-precision decimal ring, backed by
// apd.Decimal under a caller-supplied apd.Context (precision/rounding
// policy). Mirrors cue-lang-cue's use of apd.Context-scoped operations
// (cue/binop.go, cue/context.go) rather than apd.Decimal methods directly.
type DecimalRing struct {
	Ctx *apd.Context
}

// NewDecimalRing builds a DecimalRing over apd.BaseContext, cue-lang-cue's
// own default precision/rounding policy.
func NewDecimalRing() DecimalRing {
	ctx := apd.BaseContext
	return DecimalRing{Ctx: &ctx}
}

func (DecimalRing) Zero() *apd.Decimal { return apd.New(0, 0) }

func (DecimalRing) IsZero(c *apd.Decimal) bool { return c.IsZero() }

func (r DecimalRing) Add(a, b *apd.Decimal) (*apd.Decimal, error) {
	var d apd.Decimal
	_, err := r.Ctx.Add(&d, a, b)
	if err != nil {
		return nil, fmt.Errorf("decimal ring add: %w", err)
	}
	return &d, nil
}

func (r DecimalRing) Mul(a, b *apd.Decimal) (*apd.Decimal, error) {
	var d apd.Decimal
	_, err := r.Ctx.Mul(&d, a, b)
	if err != nil {
		return nil, fmt.Errorf("decimal ring mul: %w", err)
	}
	return &d, nil
}

func (r DecimalRing) Neg(c *apd.Decimal) *apd.Decimal {
	var d apd.Decimal
	_, _ = r.Ctx.Neg(&d, c)
	return &d
}

func (DecimalRing) Equal(a, b *apd.Decimal) bool { return a.Cmp(b) == 0 }

func (DecimalRing) String(c *apd.Decimal) string { return c.String() }

// Float64Ring is the approximate IEEE-754 ring. The "combine to zero"
// cancellation invariant degrades here to "combine to exact float64 zero" —
// the one ring this engine allows to be inexact.
type Float64Ring struct{}

func (Float64Ring) Zero() float64 { return 0 }

func (Float64Ring) IsZero(c float64) bool { return c == 0 }

func (Float64Ring) Add(a, b float64) (float64, error) { return a + b, nil }

func (Float64Ring) Mul(a, b float64) (float64, error) { return a * b, nil }

func (Float64Ring) Neg(c float64) float64 { return -c }

func (Float64Ring) Equal(a, b float64) bool { return a == b }

func (Float64Ring) String(c float64) string { return fmt.Sprintf("%g", c) }
