package polynomial

import (
	"polyalg/internal/bitpack"
	"polyalg/internal/coeff"
	"polyalg/internal/monomial"
)

func checkMulPreconditions[W interface{ comparable; bitpack.Word[W] }, C any](h, f, g *Polynomial[W, C]) error {
	if !h.SymbolSet().Equal(f.SymbolSet()) || !f.SymbolSet().Equal(g.SymbolSet()) {
		return InvalidArgumentError{Op: "mul", Msg: "h, f, and g must share the same symbol set"}
	}
	if h.Size() != 0 {
		return InvalidArgumentError{Op: "mul", Msg: "h must be empty on entry"}
	}
	return nil
}

// MulSimple is the single-threaded reference multiplier: iterate every
// pair of terms, multiply monomial and coefficient, apply truncation,
// and insert_or_accumulate into h. Order is unobservable externally.
func MulSimple[W interface{ comparable; bitpack.Word[W] }, C any](h, f, g *Polynomial[W, C], ring coeff.Ring[C], trunc *Truncation) error {
	if err := checkMulPreconditions(h, f, g); err != nil {
		return err
	}
	k := f.Arity()
	var idx []int
	if trunc != nil {
		idx = trunc.idx(f.SymbolSet())
	}

	var mulErr error
	f.Each(func(mf monomial.Monomial[W], cf C) bool {
		g.Each(func(mg monomial.Monomial[W], cg C) bool {
			m, err := monomial.Multiply(mf, mg, k)
			if err != nil {
				mulErr = err
				return false
			}
			if trunc != nil {
				pd, err := monomial.PartialDegree(m, k, idx)
				if err != nil {
					mulErr = err
					return false
				}
				if !trunc.keeps(pd) {
					return true
				}
			}
			c, err := ring.Mul(cf, cg)
			if err != nil {
				mulErr = RingError{Op: "mul_simple", Err: err}
				return false
			}
			if err := h.InsertOrAccumulate(m, c); err != nil {
				mulErr = err
				return false
			}
			return true
		})
		return mulErr == nil
	})
	if mulErr != nil {
		h.ClearTerms()
		return mulErr
	}
	return nil
}
