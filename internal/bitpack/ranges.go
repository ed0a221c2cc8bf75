package bitpack

import "fmt"

// slotRange derives the per-slot width p and allowed range [lo, hi] for a
// packer/unpacker of arity k over word type T, per spec:
//
//	unsigned:        p = nbits/k,                  lo = 0,              hi = (1<<p)-1
//	signed,  k == 1:  p = nbits,                    [lo, hi] = full signed range of T
//	signed,  k >= 2:  p = nbits/k - (1 if nbits%k==0 else 0), lo = -(1<<(p-1)), hi = (1<<(p-1))-1
// SlotRange exposes the per-slot [lo, hi] bound a Packer/Unpacker of arity k
// enforces for word type T, so callers can pre-check a sum against it
// without building a Packer.
func SlotRange[T interface{ comparable; Word[T] }](k int) (lo, hi T, err error) {
	_, lo, hi, err = slotRange[T](k)
	return lo, hi, err
}

func slotRange[T interface{ comparable; Word[T] }](k int) (pbits int, lo, hi T, err error) {
	var zero T
	nbits := zero.NBits()
	signed := zero.Signed()

	if signed {
		if k >= nbits {
			return 0, zero, zero, OverflowError{
				Op:    "packer",
				Value: fmt.Sprintf("arity %d", k),
				Lo:    "0",
				Hi:    fmt.Sprintf("%d", nbits-1),
			}
		}
	} else {
		if k > nbits {
			return 0, zero, zero, OverflowError{
				Op:    "packer",
				Value: fmt.Sprintf("arity %d", k),
				Lo:    "0",
				Hi:    fmt.Sprintf("%d", nbits),
			}
		}
	}

	if k == 0 {
		return 0, zero, zero, nil
	}

	one := zero.FromInt64(1)

	if signed {
		if k == 1 {
			pbits = nbits
			// Full signed range: lo = -(1<<(nbits-1)), hi = (1<<(nbits-1))-1.
			half := one.Shl(uint(nbits - 1))
			lo = zero.Sub(half)
			hi = half.Sub(one)
			return pbits, lo, hi, nil
		}
		pbits = nbits / k
		if nbits%k == 0 {
			pbits--
		}
		half := one.Shl(uint(pbits - 1))
		lo = zero.Sub(half)
		hi = half.Sub(one)
		return pbits, lo, hi, nil
	}

	pbits = nbits / k
	hi = one.Shl(uint(pbits)).Sub(one)
	lo = zero
	return pbits, lo, hi, nil
}
