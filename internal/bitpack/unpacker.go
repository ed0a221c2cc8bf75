package bitpack

import "fmt"

// Unpacker extracts, one at a time, the k values packed into a word of type
// T by Packer[T].
type Unpacker[T interface{ comparable; Word[T] }] struct {
	arity    int
	pbits    int
	mask     T
	value    T // the packed word (unsigned), or its shifted view n - minPacked (signed); read at curShift
	addBack  T // per-slot lo to add back after masking (signed), unused (zero) for unsigned
	curShift uint
	popped   int
}

// NewUnpacker constructs an unpacker for arity k over the packed word n.
// Returns OverflowError if k doesn't fit T's width, or if n lies outside the
// achievable packed range for arity k; returns InvalidArgumentError if k==0
// and n != 0.
func NewUnpacker[T interface{ comparable; Word[T] }](n T, k int) (*Unpacker[T], error) {
	var zero T
	pbits, lo, _, err := slotRange[T](k)
	if err != nil {
		return nil, err
	}

	if k == 0 {
		if n.Cmp(zero) != 0 {
			return nil, InvalidArgumentError{
				Op:  "unpacker",
				Msg: fmt.Sprintf("only a value of zero can be unpacked into an empty output range, got %v", n.BigInt()),
			}
		}
		return &Unpacker[T]{arity: 0}, nil
	}

	if zero.Signed() && k == 1 {
		// Special-cased exactly as the packer/unpacker source: with a
		// single signed slot spanning the type's full range, there is
		// nothing to mask or shift — the one popped value is n itself.
		return &Unpacker[T]{arity: 1, pbits: 0, addBack: n, value: zero}, nil
	}

	minPacked, maxPacked, err := packedBounds[T](k)
	if err != nil {
		return nil, err
	}
	if n.Cmp(minPacked) < 0 || n.Cmp(maxPacked) > 0 {
		return nil, OverflowError{
			Op:    "unpacker",
			Value: fmt.Sprint(n.BigInt()),
			Lo:    fmt.Sprint(minPacked.BigInt()),
			Hi:    fmt.Sprint(maxPacked.BigInt()),
		}
	}

	one := zero.FromInt64(1)
	mask := one.Shl(uint(pbits)).Sub(one)

	if zero.Signed() {
		sValue := n.Sub(minPacked)
		return &Unpacker[T]{arity: k, pbits: pbits, mask: mask, value: sValue, addBack: lo}, nil
	}
	return &Unpacker[T]{arity: k, pbits: pbits, mask: mask, value: n}, nil
}

// Pop extracts and returns the next value. Fails with OutOfRangeError once
// all k slots have been consumed.
func (u *Unpacker[T]) Pop() (T, error) {
	var zero T
	if u.popped == u.arity {
		return zero, OutOfRangeError{
			Op:  "pop",
			Msg: fmt.Sprintf("all %d values have already been unpacked", u.arity),
		}
	}

	out := u.value.ShrLogical(u.curShift).And(u.mask).Add(u.addBack)
	u.popped++
	u.curShift += uint(u.pbits)
	return out, nil
}

// Unpack is a convenience wrapper that pops all k values in one call.
func Unpack[T interface{ comparable; Word[T] }](n T, k int) ([]T, error) {
	u, err := NewUnpacker[T](n, k)
	if err != nil {
		return nil, err
	}
	out := make([]T, k)
	for i := 0; i < k; i++ {
		v, err := u.Pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
