package polynomial

import (
	"math/big"
	"testing"

	"polyalg/internal/bitpack"
	"polyalg/internal/coeff"
	"polyalg/internal/monomial"
	"polyalg/internal/symbols"
)

func mono(t *testing.T, exps ...int32) monomial.Monomial[bitpack.I32] {
	t.Helper()
	xs := make([]bitpack.I32, len(exps))
	for i, e := range exps {
		xs[i] = bitpack.I32(e)
	}
	m, err := monomial.FromExponents(xs)
	if err != nil {
		t.Fatalf("FromExponents(%v): %v", exps, err)
	}
	return m
}

func newXY(t *testing.T) *Polynomial[bitpack.I32, *big.Int] {
	t.Helper()
	p := New[bitpack.I32](coeff.BigIntRing{})
	if err := p.SetSymbolSet(symbols.New("x", "y")); err != nil {
		t.Fatalf("SetSymbolSet: %v", err)
	}
	return p
}

func TestSetSymbolSetRejectsNonEmpty(t *testing.T) {
	p := newXY(t)
	if err := p.InsertOrAccumulate(mono(t, 1, 0), big.NewInt(1)); err != nil {
		t.Fatalf("InsertOrAccumulate: %v", err)
	}
	if err := p.SetSymbolSet(symbols.New("x", "y", "z")); err == nil {
		t.Fatalf("expected error changing symbol set on non-empty polynomial")
	}
}

func TestSetNSegmentsValidation(t *testing.T) {
	p := newXY(t)
	if err := p.SetNSegments(4); err != nil {
		t.Fatalf("SetNSegments(4): %v", err)
	}
	if err := p.SetNSegments(3); err == nil {
		t.Fatalf("expected error for non-power-of-two segment count")
	}
}

func TestInsertOrAccumulateCombinesAndCancels(t *testing.T) {
	p := newXY(t)
	x := mono(t, 1, 0)
	if err := p.InsertOrAccumulate(x, big.NewInt(3)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := p.InsertOrAccumulate(x, big.NewInt(4)); err != nil {
		t.Fatalf("accumulate: %v", err)
	}
	c, ok := p.lookup(x)
	if !ok || c.Cmp(big.NewInt(7)) != 0 {
		t.Fatalf("expected 7, got %v (ok=%v)", c, ok)
	}
	if err := p.InsertOrAccumulate(x, big.NewInt(-7)); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if p.Size() != 0 {
		t.Fatalf("expected term to vanish after cancellation, size=%d", p.Size())
	}
}

func TestInsertOrAccumulateZeroIsNoOp(t *testing.T) {
	p := newXY(t)
	if err := p.InsertOrAccumulate(mono(t, 2, 0), big.NewInt(0)); err != nil {
		t.Fatalf("insert zero: %v", err)
	}
	if p.Size() != 0 {
		t.Fatalf("expected size 0 after inserting a zero coefficient, got %d", p.Size())
	}
}

func TestEqualIsOrderAndSegmentIndependent(t *testing.T) {
	a := newXY(t)
	b := newXY(t)
	if err := b.SetNSegments(4); err != nil {
		t.Fatalf("SetNSegments: %v", err)
	}
	terms := []struct {
		exps [2]int32
		c    int64
	}{{[2]int32{1, 0}, 3}, {[2]int32{0, 1}, -2}, {[2]int32{2, 2}, 5}}
	for _, tm := range terms {
		if err := a.InsertOrAccumulate(mono(t, tm.exps[0], tm.exps[1]), big.NewInt(tm.c)); err != nil {
			t.Fatalf("a insert: %v", err)
		}
		if err := b.InsertOrAccumulate(mono(t, tm.exps[0], tm.exps[1]), big.NewInt(tm.c)); err != nil {
			t.Fatalf("b insert: %v", err)
		}
	}
	if !a.Equal(b) {
		t.Fatalf("expected equal polynomials regardless of segment count")
	}
}
