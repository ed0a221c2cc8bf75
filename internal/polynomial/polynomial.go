// Package polynomial implements the sparse multivariate polynomial
// container and its two multiplication kernels: a single-threaded
// reference implementation and a parallel, segmented one.
package polynomial

import (
	"fmt"

	"polyalg/internal/bitpack"
	"polyalg/internal/coeff"
	"polyalg/internal/monomial"
	"polyalg/internal/symbols"
)

// Polynomial is an unordered collection of (monomial, coefficient) pairs
// over a named symbol set, stored as a set of segments — each segment a
// native Go map keyed by monomial, so segment membership is a plain
// hash-map lookup and the *segmentation* above it is what gives the
// parallel multiplier disjoint, lock-free units of work.
type Polynomial[W interface{ comparable; bitpack.Word[W] }, C any] struct {
	ring      coeff.Ring[C]
	ss        symbols.SymbolSet
	nSegments int // 0 means "unset, multiplier chooses"; otherwise a power of two
	segments  []map[monomial.Monomial[W]]C
}

// New creates an empty polynomial with an empty symbol set and no
// segments configured yet (the degenerate single-segment case is used
// until SetNSegments or a multiplier picks something else).
func New[W interface{ comparable; bitpack.Word[W] }, C any](ring coeff.Ring[C]) *Polynomial[W, C] {
	return &Polynomial[W, C]{ring: ring, ss: symbols.New()}
}

// SymbolSet returns the polynomial's associated symbol set.
func (p *Polynomial[W, C]) SymbolSet() symbols.SymbolSet { return p.ss }

// Arity returns the arity every contained monomial shares.
func (p *Polynomial[W, C]) Arity() int { return p.ss.Size() }

// NSegments returns the currently effective segment count (at least 1).
func (p *Polynomial[W, C]) NSegments() int {
	if p.nSegments <= 0 {
		return 1
	}
	return p.nSegments
}

// SetSymbolSet associates ss with the polynomial. Only valid on an empty
// polynomial.
func (p *Polynomial[W, C]) SetSymbolSet(ss symbols.SymbolSet) error {
	if p.Size() != 0 {
		return InvalidArgumentError{Op: "set_symbol_set", Msg: "polynomial is not empty"}
	}
	p.ss = ss
	return nil
}

// SetNSegments configures the segment count (must be zero, meaning "let
// the multiplier choose", or a power of two). Only valid on an empty
// polynomial.
func (p *Polynomial[W, C]) SetNSegments(n int) error {
	if p.Size() != 0 {
		return InvalidArgumentError{Op: "set_n_segments", Msg: "polynomial is not empty"}
	}
	if n < 0 || (n != 0 && n&(n-1) != 0) {
		return InvalidArgumentError{Op: "set_n_segments", Msg: fmt.Sprintf("%d is not zero or a power of two", n)}
	}
	p.nSegments = n
	p.segments = nil
	return nil
}

// ClearTerms drops all entries but keeps the symbol set and segment
// configuration (call SetNSegments(0) afterward to also reset the segment
// count for the next multiplication).
func (p *Polynomial[W, C]) ClearTerms() {
	for i := range p.segments {
		p.segments[i] = make(map[monomial.Monomial[W]]C)
	}
}

func (p *Polynomial[W, C]) ensureSegments() {
	want := p.NSegments()
	if len(p.segments) == want {
		return
	}
	segs := make([]map[monomial.Monomial[W]]C, want)
	for i := range segs {
		segs[i] = make(map[monomial.Monomial[W]]C)
	}
	// Re-home any existing entries (only reachable if nSegments changed
	// after terms were already present, which SetNSegments itself forbids
	// — this loop only ever runs once, over an empty polynomial).
	for _, old := range p.segments {
		for m, c := range old {
			idx := int(monomial.Hash(m) & uint64(want-1))
			segs[idx][m] = c
		}
	}
	p.segments = segs
}

// segmentIndex returns the owning segment for m under n segments.
// segmentIndex maps a monomial to one of n segments. n is always a power of
// two (enforced by SetNSegments/nextPowerOfTwo), so a bitmask suffices and
// there is never a need for arbitrary-divisor machinery like fastmod.
func segmentIndex[W interface{ comparable; bitpack.Word[W] }](m monomial.Monomial[W], n int) int {
	return int(monomial.Hash(m) & uint64(n-1))
}

// InsertOrAccumulate inserts (m, c), or combines c into an existing
// entry's coefficient via the ring's Add, removing the entry if the sum
// is zero. A zero c against a missing entry is a no-op.
func (p *Polynomial[W, C]) InsertOrAccumulate(m monomial.Monomial[W], c C) error {
	p.ensureSegments()
	seg := p.segments[segmentIndex[W](m, len(p.segments))]

	if old, ok := seg[m]; ok {
		sum, err := p.ring.Add(old, c)
		if err != nil {
			return RingError{Op: "insert_or_accumulate", Err: err}
		}
		if p.ring.IsZero(sum) {
			delete(seg, m)
		} else {
			seg[m] = sum
		}
		return nil
	}
	if p.ring.IsZero(c) {
		return nil
	}
	seg[m] = c
	return nil
}

// Size returns the total number of non-zero entries.
func (p *Polynomial[W, C]) Size() int {
	n := 0
	for _, seg := range p.segments {
		n += len(seg)
	}
	return n
}

// Each calls yield once per entry, in unspecified order, stopping early
// if yield returns false.
func (p *Polynomial[W, C]) Each(yield func(monomial.Monomial[W], C) bool) {
	for _, seg := range p.segments {
		for m, c := range seg {
			if !yield(m, c) {
				return
			}
		}
	}
}

func (p *Polynomial[W, C]) lookup(m monomial.Monomial[W]) (C, bool) {
	if len(p.segments) == 0 {
		var zero C
		return zero, false
	}
	seg := p.segments[segmentIndex[W](m, len(p.segments))]
	c, ok := seg[m]
	return c, ok
}

// Equal reports set-equality of the non-zero entries of p and other,
// independent of segment layout or internal ordering.
func (p *Polynomial[W, C]) Equal(other *Polynomial[W, C]) bool {
	if p.Size() != other.Size() {
		return false
	}
	equal := true
	p.Each(func(m monomial.Monomial[W], c C) bool {
		oc, ok := other.lookup(m)
		if !ok || !p.ring.Equal(c, oc) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// installSegments atomically replaces the segment storage. Used only by
// MulParallel's Merge phase, after all Accumulate workers have joined.
func (p *Polynomial[W, C]) installSegments(segs []map[monomial.Monomial[W]]C) {
	p.nSegments = len(segs)
	p.segments = segs
}
