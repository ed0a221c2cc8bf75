package polynomial

import (
	"fmt"

	"polyalg/internal/bitpack"
	"polyalg/internal/monomial"
)

// slotBounds scans every term of p once and returns, per exponent slot, the
// minimum and maximum value any single term contributes. An empty p yields
// all-zero bounds, which is harmless: an empty operand makes the product
// empty regardless of what preCheckOverflow concludes about slot ranges.
func slotBounds[W interface{ comparable; bitpack.Word[W] }, C any](p *Polynomial[W, C], k int) (lo, hi []W, err error) {
	lo = make([]W, k)
	hi = make([]W, k)
	first := true
	var inner error
	p.Each(func(m monomial.Monomial[W], _ C) bool {
		xs, e := m.Exponents(k)
		if e != nil {
			inner = e
			return false
		}
		if first {
			copy(lo, xs)
			copy(hi, xs)
			first = false
			return true
		}
		for i, x := range xs {
			if x.Cmp(lo[i]) < 0 {
				lo[i] = x
			}
			if x.Cmp(hi[i]) > 0 {
				hi[i] = x
			}
		}
		return true
	})
	if inner != nil {
		return nil, nil, inner
	}
	return lo, hi, nil
}

// preCheckOverflow rejects, before any multiplication runs, an (f, g) pair
// whose worst-case pairwise slot sum could escape the arity-k packed range.
// Done once over aggregated per-slot bounds rather than once per term pair.
func preCheckOverflow[W interface{ comparable; bitpack.Word[W] }, C any](f, g *Polynomial[W, C], k int) error {
	if k == 0 || f.Size() == 0 || g.Size() == 0 {
		return nil
	}
	loF, hiF, err := slotBounds[W](f, k)
	if err != nil {
		return err
	}
	loG, hiG, err := slotBounds[W](g, k)
	if err != nil {
		return err
	}
	slotLo, slotHi, err := bitpack.SlotRange[W](k)
	if err != nil {
		return err
	}
	var zero W
	for i := 0; i < k; i++ {
		worstLo := loF[i].Add(loG[i])
		worstHi := hiF[i].Add(hiG[i])
		// With a single full-width slot the sums themselves can wrap around.
		wrapped := (hiG[i].Cmp(zero) > 0 && worstHi.Cmp(hiF[i]) < 0) ||
			(loG[i].Cmp(zero) < 0 && worstLo.Cmp(loF[i]) > 0)
		if wrapped || worstLo.Cmp(slotLo) < 0 || worstHi.Cmp(slotHi) > 0 {
			return OverflowError{
				Op: "mul_parallel_precheck",
				Msg: fmt.Sprintf("slot %d worst-case sum range [%s, %s] escapes packed range [%s, %s]",
					i, worstLo.BigInt(), worstHi.BigInt(), slotLo.BigInt(), slotHi.BigInt()),
			}
		}
	}
	return nil
}
