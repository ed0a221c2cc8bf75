// Package polyalg is the public façade over the sparse multivariate
// polynomial engine: a generic container, two multiplication kernels, and
// a small set of concrete coefficient rings, all exported behind generic
// type aliases so callers never need to import the internal packages
// directly.
package polyalg

import (
	"polyalg/internal/bitpack"
	"polyalg/internal/coeff"
	"polyalg/internal/polynomial"
	"polyalg/internal/symbols"
)

// Polynomial is a sparse multivariate polynomial over word type W (the
// packed monomial representation) and coefficient type C.
type Polynomial[W interface{ comparable; bitpack.Word[W] }, C any] = polynomial.Polynomial[W, C]

// Truncation bounds a multiplication to terms at or below a partial degree,
// measured over a chosen subset of the symbol set. A nil *Truncation
// applies no bound.
type Truncation = polynomial.Truncation

// MulConfig tunes the parallel multiplier.
type MulConfig = polynomial.MulConfig

// SymbolSet names and orders the variables a Polynomial is expressed over.
type SymbolSet = symbols.SymbolSet

// Ring is the algebraic interface a coefficient type must satisfy.
type Ring[C any] = coeff.Ring[C]

// DefaultMulConfig returns MulConfig defaults scaled to the host's CPUs.
func DefaultMulConfig() MulConfig { return polynomial.DefaultMulConfig() }

// NewSymbols builds a SymbolSet from variable names (sorted, deduplicated).
func NewSymbols(names ...string) SymbolSet { return symbols.New(names...) }

// New creates an empty polynomial over the given ring.
func New[W interface{ comparable; bitpack.Word[W] }, C any](ring coeff.Ring[C]) *Polynomial[W, C] {
	return polynomial.New[W](ring)
}

// Concrete rings, re-exported so callers never need to import internal/coeff.
type (
	BigIntRing  = coeff.BigIntRing
	BigRatRing  = coeff.BigRatRing
	DecimalRing = coeff.DecimalRing
	Float64Ring = coeff.Float64Ring
)

// NewDecimalRing returns a DecimalRing using apd's default context.
func NewDecimalRing() DecimalRing { return coeff.NewDecimalRing() }

// Multiply computes f*g into a freshly allocated polynomial, choosing the
// parallel kernel whenever cfg requests more than one worker and falling
// back to the single-threaded reference kernel otherwise.
func Multiply[W interface{ comparable; bitpack.Word[W] }, C any](f, g *Polynomial[W, C], ring coeff.Ring[C], trunc *Truncation, cfg MulConfig) (*Polynomial[W, C], error) {
	h := polynomial.New[W](ring)
	if err := h.SetSymbolSet(f.SymbolSet()); err != nil {
		return nil, err
	}
	if cfg.NumThreads <= 1 {
		if err := polynomial.MulSimple(h, f, g, ring, trunc); err != nil {
			return nil, err
		}
		return h, nil
	}
	if err := polynomial.MulParallel(h, f, g, ring, trunc, cfg); err != nil {
		return nil, err
	}
	return h, nil
}

// Pow raises p to the n-th power (n >= 1) by repeated squaring over
// MulParallel, so any multiplier failure — including a PreCheck overflow on
// a pairwise product that cannot be represented at p's arity — surfaces
// from Pow unchanged and before any partial output is produced.
//
// n == 0 is rejected: coeff.Ring has no multiplicative identity, so "p^0"
// cannot be constructed generically across every ring this package ships.
func Pow[W interface{ comparable; bitpack.Word[W] }, C any](p *Polynomial[W, C], n uint64, ring coeff.Ring[C], cfg MulConfig) (*Polynomial[W, C], error) {
	if n == 0 {
		return nil, polynomial.InvalidArgumentError{Op: "pow", Msg: "exponent must be >= 1 (no generic multiplicative identity across rings)"}
	}

	var acc *Polynomial[W, C]
	base := p
	exp := n
	for {
		if exp&1 == 1 {
			if acc == nil {
				acc = base
			} else {
				next := polynomial.New[W](ring)
				if err := next.SetSymbolSet(acc.SymbolSet()); err != nil {
					return nil, err
				}
				if err := polynomial.MulParallel(next, acc, base, ring, nil, cfg); err != nil {
					return nil, err
				}
				acc = next
			}
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		sq := polynomial.New[W](ring)
		if err := sq.SetSymbolSet(base.SymbolSet()); err != nil {
			return nil, err
		}
		if err := polynomial.MulParallel(sq, base, base, ring, nil, cfg); err != nil {
			return nil, err
		}
		base = sq
	}
	return acc, nil
}
