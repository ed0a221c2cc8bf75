package bitpack

import "fmt"

// Packer accumulates up to k exponent values into a single packed word of
// type T, range-checking every push.
type Packer[T interface{ comparable; Word[T] }] struct {
	arity   int
	pbits   int
	lo, hi  T
	v       T
	curShift uint
	pushed  int
}

// NewPacker constructs a packer for k values. Returns OverflowError if k is
// too large for T's width (k >= nbits(T) for signed T, k > nbits(T) for
// unsigned T).
func NewPacker[T interface{ comparable; Word[T] }](k int) (*Packer[T], error) {
	pbits, lo, hi, err := slotRange[T](k)
	if err != nil {
		return nil, err
	}
	return &Packer[T]{arity: k, pbits: pbits, lo: lo, hi: hi}, nil
}

// Push appends the next value to the packer. Fails with OutOfRangeError if
// the arity has already been reached, or OverflowError if n falls outside
// this packer's per-slot [lo, hi] range.
func (p *Packer[T]) Push(n T) error {
	if p.pushed == p.arity {
		return OutOfRangeError{
			Op:  "push",
			Msg: fmt.Sprintf("packer already has %d values, its configured arity", p.arity),
		}
	}
	if n.Cmp(p.lo) < 0 || n.Cmp(p.hi) > 0 {
		return OverflowError{
			Op:    "push",
			Value: fmt.Sprint(n.BigInt()),
			Lo:    fmt.Sprint(p.lo.BigInt()),
			Hi:    fmt.Sprint(p.hi.BigInt()),
		}
	}
	// n itself already carries its own sign handling via Shl; shifting it
	// directly (rather than building a mask and shifting that) keeps the
	// accumulator update in terms of Word's own arithmetic.
	term := n.Shl(p.curShift)
	p.v = p.v.Add(term)
	p.pushed++
	p.curShift += uint(p.pbits)
	return nil
}

// Get returns the packed word. Fails with OutOfRangeError if fewer than k
// values have been pushed.
func (p *Packer[T]) Get() (T, error) {
	var zero T
	if p.pushed < p.arity {
		return zero, OutOfRangeError{
			Op:  "get",
			Msg: fmt.Sprintf("only %d of %d values have been pushed", p.pushed, p.arity),
		}
	}
	return p.v, nil
}

// Pack is a convenience wrapper that pushes all of xs and returns the
// packed word in one call.
func Pack[T interface{ comparable; Word[T] }](xs []T) (T, error) {
	var zero T
	p, err := NewPacker[T](len(xs))
	if err != nil {
		return zero, err
	}
	for _, x := range xs {
		if err := p.Push(x); err != nil {
			return zero, err
		}
	}
	return p.Get()
}
