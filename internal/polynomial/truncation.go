package polynomial

import (
	"math/big"

	"polyalg/internal/symbols"
)

// Truncation bundles a maximum partial degree and the symbol subset it is
// measured over. A nil *Truncation means no truncation is applied.
type Truncation struct {
	Degree  *big.Int
	Symbols symbols.SymbolSet
}

// idx resolves t.Symbols against ss, returning the indices into ss's
// arity that t.Symbols names. When S is a strict subset of ss, exponents
// outside S do not count toward the partial degree. Symbols not present in
// ss are dropped — the converse case, S naming something outside ss,
// cannot arise once f, g, h all share one symbol set, but is handled
// defensively here rather than assumed.
//
// An unset (zero-size) t.Symbols defaults to the full symbol set: a
// Truncation built as &Truncation{Degree: d}, with S omitted, means total
// degree over every symbol, not "no symbol at all."
func (t *Truncation) idx(ss symbols.SymbolSet) []int {
	if t.Symbols.Size() == 0 {
		out := make([]int, ss.Size())
		for i := range out {
			out[i] = i
		}
		return out
	}
	names := t.Symbols.Names()
	out := make([]int, 0, len(names))
	for _, n := range names {
		if i := ss.Index(n); i >= 0 {
			out = append(out, i)
		}
	}
	return out
}

// keeps reports whether a monomial with the given partial degree survives
// this truncation bound. A negative Degree always yields an empty result,
// even for monomials whose (signed) exponents sum to a negative value.
func (t *Truncation) keeps(partialDegree *big.Int) bool {
	if t == nil {
		return true
	}
	if t.Degree.Sign() < 0 {
		return false
	}
	return partialDegree.Cmp(t.Degree) <= 0
}
