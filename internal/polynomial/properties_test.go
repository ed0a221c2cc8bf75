package polynomial

import (
	"math/big"
	"testing"

	"polyalg/internal/bitpack"
	"polyalg/internal/coeff"
	"polyalg/internal/monomial"
	"polyalg/internal/symbols"
)

// polyFromTerms5 builds a polynomial over an arity-5 symbol set from a map
// of exponent vectors to integer coefficients. Uses the 64-bit word: raising
// the scenario's base polynomials to the 8th power pushes individual
// exponents up to 40, past what a 5-slot 32-bit word's 6-bit-per-slot range
// ([-32, 31]) can hold.
func polyFromTerms5(t *testing.T, ss symbols.SymbolSet, terms map[[5]int32]int64) *Polynomial[bitpack.I64, *big.Int] {
	t.Helper()
	p := New[bitpack.I64](coeff.BigIntRing{})
	if err := p.SetSymbolSet(ss); err != nil {
		t.Fatalf("SetSymbolSet: %v", err)
	}
	for exps, c := range terms {
		xs := make([]bitpack.I64, 5)
		for i, e := range exps {
			xs[i] = bitpack.I64(e)
		}
		m, err := monomial.FromExponents(xs)
		if err != nil {
			t.Fatalf("FromExponents: %v", err)
		}
		if err := p.InsertOrAccumulate(m, big.NewInt(c)); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return p
}

// squareSimple returns p*p via the reference multiplier, used as the
// trusted path to build up the large powers scenario 5 calls for.
func squareSimple(t *testing.T, p *Polynomial[bitpack.I64, *big.Int]) *Polynomial[bitpack.I64, *big.Int] {
	t.Helper()
	h := New[bitpack.I64](coeff.BigIntRing{})
	if err := h.SetSymbolSet(p.SymbolSet()); err != nil {
		t.Fatalf("SetSymbolSet: %v", err)
	}
	if err := MulSimple(h, p, p, coeff.BigIntRing{}, nil); err != nil {
		t.Fatalf("MulSimple (square): %v", err)
	}
	return h
}

// TestMulParallelLargeDegreeTruncationMatchesSimple is the large-scale
// scenario: f = (x + y + 2z^2 + 3t^3 + 5u^5 + 1)^8,
// g = (u + t + 2z^2 + 3y^3 + 5x^5 + 1)^8, truncated at partial degree 40
// over {x, t, u}. It checks MulSimple and MulParallel agree at a scale
// where segment count is actually > 1 (unlike the small hand-worked
// scenarios), and that the truncation boundary is exercised for real: the
// maximum partial degree over {x, t, u} among the surviving terms is
// exactly 40, not some smaller value that would make the bound vacuous.
func TestMulParallelLargeDegreeTruncationMatchesSimple(t *testing.T) {
	// Symbol order is alphabetical: t, u, x, y, z.
	ss := symbols.New("x", "y", "z", "t", "u")

	f0 := polyFromTerms5(t, ss, map[[5]int32]int64{
		{0, 0, 1, 0, 0}: 1, // x          (t,u,x,y,z)
		{0, 0, 0, 1, 0}: 1, // y
		{0, 0, 0, 0, 2}: 2, // 2z^2
		{3, 0, 0, 0, 0}: 3, // 3t^3
		{0, 5, 0, 0, 0}: 5, // 5u^5
		{0, 0, 0, 0, 0}: 1, // 1
	})
	g0 := polyFromTerms5(t, ss, map[[5]int32]int64{
		{0, 1, 0, 0, 0}: 1, // u
		{1, 0, 0, 0, 0}: 1, // t
		{0, 0, 0, 0, 2}: 2, // 2z^2
		{0, 0, 0, 3, 0}: 3, // 3y^3
		{0, 0, 5, 0, 0}: 5, // 5x^5
		{0, 0, 0, 0, 0}: 1, // 1
	})

	// f0^8 and g0^8 via repeated squaring on the trusted reference path.
	f8 := squareSimple(t, squareSimple(t, squareSimple(t, f0)))
	g8 := squareSimple(t, squareSimple(t, squareSimple(t, g0)))

	trunc := &Truncation{Degree: big.NewInt(40), Symbols: symbols.New("x", "t", "u")}

	wantH := New[bitpack.I64](coeff.BigIntRing{})
	if err := wantH.SetSymbolSet(ss); err != nil {
		t.Fatalf("SetSymbolSet: %v", err)
	}
	if err := MulSimple(wantH, f8, g8, coeff.BigIntRing{}, trunc); err != nil {
		t.Fatalf("MulSimple: %v", err)
	}

	gotH := New[bitpack.I64](coeff.BigIntRing{})
	if err := gotH.SetSymbolSet(ss); err != nil {
		t.Fatalf("SetSymbolSet: %v", err)
	}
	cfg := MulConfig{NumThreads: 4, TargetLoad: 8}
	if err := MulParallel(gotH, f8, g8, coeff.BigIntRing{}, trunc, cfg); err != nil {
		t.Fatalf("MulParallel: %v", err)
	}

	if !gotH.Equal(wantH) {
		t.Fatalf("MulParallel disagrees with MulSimple on the degree-40 {x,t,u} truncation of f^8 * g^8")
	}
	if wantH.Size() == 0 {
		t.Fatalf("expected a non-empty truncated product")
	}

	idx := trunc.idx(ss)
	maxPD := big.NewInt(-1)
	wantH.Each(func(m monomial.Monomial[bitpack.I64], _ *big.Int) bool {
		pd, err := monomial.PartialDegree(m, ss.Size(), idx)
		if err != nil {
			t.Fatalf("PartialDegree: %v", err)
		}
		if pd.Cmp(maxPD) > 0 {
			maxPD = pd
		}
		return true
	})
	if maxPD.Cmp(big.NewInt(40)) != 0 {
		t.Fatalf("expected the truncated product's max partial degree over {x,t,u} to be exactly 40, got %s", maxPD.String())
	}
}

// TestTruncationMonotonicity covers property 5 from the testable-properties
// list: if d1 <= d2, the terms retained under d1 are a subset of those
// retained under d2 (same coefficients, not just the same monomials).
func TestTruncationMonotonicity(t *testing.T) {
	ss := symbols.New("x", "y", "z")
	f := polyFromTerms3(t, ss, map[[3]int32]int64{{1, 0, 1}: 1, {0, 1, 0}: 1})
	g := polyFromTerms3(t, ss, map[[3]int32]int64{{1, 0, 0}: 1, {0, 1, 0}: -1, {0, 0, 0}: -1})

	degrees := []int64{-1, 0, 1, 2, 3}
	results := make([]*Polynomial[bitpack.I32, *big.Int], len(degrees))
	for i, d := range degrees {
		h := New[bitpack.I32](coeff.BigIntRing{})
		if err := h.SetSymbolSet(ss); err != nil {
			t.Fatalf("SetSymbolSet: %v", err)
		}
		trunc := &Truncation{Degree: big.NewInt(d), Symbols: ss}
		if err := MulSimple(h, f, g, coeff.BigIntRing{}, trunc); err != nil {
			t.Fatalf("MulSimple(d=%d): %v", d, err)
		}
		results[i] = h
	}

	for i := 0; i < len(degrees); i++ {
		for j := i + 1; j < len(degrees); j++ {
			lo, hi := results[i], results[j]
			lo.Each(func(m monomial.Monomial[bitpack.I32], c *big.Int) bool {
				hc, ok := hi.lookup(m)
				if !ok {
					t.Fatalf("degree %d retained a term not present at degree %d (monotonicity violated)", degrees[i], degrees[j])
				}
				if hc.Cmp(c) != 0 {
					t.Fatalf("degree %d and %d disagree on the coefficient of a shared term", degrees[i], degrees[j])
				}
				return true
			})
		}
	}
}
