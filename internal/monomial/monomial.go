// Package monomial implements the packed monomial: a single machine word
// (from internal/bitpack) carrying an exponent vector whose arity is fixed
// by an owning symbol set.
package monomial

import (
	"fmt"
	"math/big"

	"github.com/cespare/xxhash/v2"

	"polyalg/internal/bitpack"
	"polyalg/internal/symbols"
)

// Monomial is a packed exponent vector. Its arity is not stored here — it
// is carried by whatever symbol set or polynomial owns the monomial — so
// Monomial is a small, comparable value type suitable as a map key.
type Monomial[W interface{ comparable; bitpack.Word[W] }] struct {
	Word W
}

// FromExponents packs xs (length k, the target arity) into a Monomial.
func FromExponents[W interface{ comparable; bitpack.Word[W] }](xs []W) (Monomial[W], error) {
	w, err := bitpack.Pack(xs)
	if err != nil {
		return Monomial[W]{}, err
	}
	return Monomial[W]{Word: w}, nil
}

// Exponents unpacks m at arity k.
func (m Monomial[W]) Exponents(k int) ([]W, error) {
	return bitpack.Unpack[W](m.Word, k)
}

// IsZero reports whether every exponent of m is zero. Since packing an
// all-zero vector always yields the zero word (regardless of arity), this
// is a direct comparison against the zero value, no unpacking needed.
func (m Monomial[W]) IsZero() bool {
	var zero W
	return m.Word.Cmp(zero) == 0
}

// Multiply adds the two monomials' exponent vectors element-wise,
// signalling an OverflowError if any slot sum escapes the per-slot
// [lo, hi] range for arity k.
func Multiply[W interface{ comparable; bitpack.Word[W] }](a, b Monomial[W], k int) (Monomial[W], error) {
	xs, err := bitpack.Unpack[W](a.Word, k)
	if err != nil {
		return Monomial[W]{}, err
	}
	ys, err := bitpack.Unpack[W](b.Word, k)
	if err != nil {
		return Monomial[W]{}, err
	}

	p, err := bitpack.NewPacker[W](k)
	if err != nil {
		return Monomial[W]{}, err
	}
	var zero W
	for i := 0; i < k; i++ {
		s := xs[i].Add(ys[i])
		// A single slot spans the whole word, so its sum can wrap around
		// before Push gets to range-check it.
		if (ys[i].Cmp(zero) > 0 && s.Cmp(xs[i]) < 0) || (ys[i].Cmp(zero) < 0 && s.Cmp(xs[i]) > 0) {
			return Monomial[W]{}, bitpack.OverflowError{
				Op:    "multiply",
				Value: fmt.Sprintf("%s + %s", xs[i].BigInt(), ys[i].BigInt()),
			}
		}
		if err := p.Push(s); err != nil {
			return Monomial[W]{}, err
		}
	}
	w, err := p.Get()
	if err != nil {
		return Monomial[W]{}, err
	}
	return Monomial[W]{Word: w}, nil
}

// Degree returns the sum of m's k unpacked exponents as an arbitrary
// precision integer, so it cannot silently overflow after repeated
// multiplication.
func Degree[W interface{ comparable; bitpack.Word[W] }](m Monomial[W], k int) (*big.Int, error) {
	return partialDegree(m, k, nil)
}

// PartialDegree returns the sum restricted to the exponents at idx.
func PartialDegree[W interface{ comparable; bitpack.Word[W] }](m Monomial[W], k int, idx []int) (*big.Int, error) {
	return partialDegree(m, k, idx)
}

func partialDegree[W interface{ comparable; bitpack.Word[W] }](m Monomial[W], k int, idx []int) (*big.Int, error) {
	xs, err := bitpack.Unpack[W](m.Word, k)
	if err != nil {
		return nil, err
	}
	sum := new(big.Int)
	if idx == nil {
		for _, x := range xs {
			sum.Add(sum, x.BigInt())
		}
		return sum, nil
	}
	for _, i := range idx {
		sum.Add(sum, xs[i].BigInt())
	}
	return sum, nil
}

// Hash returns a deterministic hash of m's packed word (not of the
// unpacked vector): equal packed words always hash equal, and the hash is
// stable across runs since xxhash.Sum64 has no randomized seed. Hashes the
// word's fixed-width byte encoding directly rather than going through
// BigInt, since this is called once per candidate term in both multiplier
// kernels' inner loops.
func Hash[W interface{ comparable; bitpack.Word[W] }](m Monomial[W]) uint64 {
	return xxhash.Sum64(m.Word.Bytes())
}

// MergeSymbols re-expresses m, currently valid over an oldArity symbol
// set, as a monomial over a newArity symbol set built by splicing in new
// symbols at the positions described by insMap: unpack at oldArity,
// interleave zero exponents per insMap, repack at newArity.
//
// Runtime contract:
//  1. the result is valid over the merged set (guaranteed by Pack itself:
//     it range-checks every slot for newArity);
//  2. distinct monomials stay distinct after an identical merge, since
//     Pack/Unpack are mutually inverse and the interleaving is
//     index-for-index the same for every monomial merged with this insMap;
//  3. a non-zero monomial stays non-zero, since only zero exponents are
//     ever added, never existing non-zero ones removed or altered.
func MergeSymbols[W interface{ comparable; bitpack.Word[W] }](m Monomial[W], insMap symbols.InsertionMap, oldArity, newArity int) (Monomial[W], error) {
	xs, err := bitpack.Unpack[W](m.Word, oldArity)
	if err != nil {
		return Monomial[W]{}, err
	}

	var zero W
	merged := make([]W, 0, newArity)
	for i := 0; i <= oldArity; i++ {
		if names, ok := insMap[i]; ok {
			for range names {
				merged = append(merged, zero)
			}
		}
		if i < oldArity {
			merged = append(merged, xs[i])
		}
	}
	if len(merged) != newArity {
		return Monomial[W]{}, fmt.Errorf("merge_symbols: insertion map produced arity %d, want %d", len(merged), newArity)
	}

	w, err := bitpack.Pack(merged)
	if err != nil {
		return Monomial[W]{}, err
	}
	return Monomial[W]{Word: w}, nil
}
