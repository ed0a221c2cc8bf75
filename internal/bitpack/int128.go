package bitpack

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit word stored as two 64-bit limbs. It exists
// so the bit-packer's generic algorithm can target a 128-bit machine word
// without resorting to math/big, which is arbitrary-length and heap
// allocated — the wrong shape for what must behave as one fixed-width
// register (see DESIGN.md).
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is a signed 128-bit word in two's-complement form, split the same
// way as Uint128. Hi carries the sign.
type Int128 struct {
	Hi int64
	Lo uint64
}

func (a Uint128) Add(b Uint128) Uint128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(a.Hi, b.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

func (a Uint128) Sub(b Uint128) Uint128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(a.Hi, b.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

func (a Uint128) Shl(s uint) Uint128 {
	switch {
	case s == 0:
		return a
	case s >= 128:
		return Uint128{}
	case s >= 64:
		return Uint128{Hi: a.Lo << (s - 64), Lo: 0}
	default:
		return Uint128{Hi: (a.Hi << s) | (a.Lo >> (64 - s)), Lo: a.Lo << s}
	}
}

func (a Uint128) ShrLogical(s uint) Uint128 {
	switch {
	case s == 0:
		return a
	case s >= 128:
		return Uint128{}
	case s >= 64:
		return Uint128{Hi: 0, Lo: a.Hi >> (s - 64)}
	default:
		return Uint128{Hi: a.Hi >> s, Lo: (a.Lo >> s) | (a.Hi << (64 - s))}
	}
}

func (a Uint128) And(b Uint128) Uint128 {
	return Uint128{Hi: a.Hi & b.Hi, Lo: a.Lo & b.Lo}
}

func (a Uint128) Not() Uint128 {
	return Uint128{Hi: ^a.Hi, Lo: ^a.Lo}
}

func (a Uint128) Cmp(b Uint128) int {
	switch {
	case a.Hi != b.Hi:
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	case a.Lo != b.Lo:
		if a.Lo < b.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (Uint128) FromInt64(i int64) Uint128 {
	return Uint128{Hi: 0, Lo: uint64(i)}
}

func (a Uint128) BigInt() *big.Int {
	v := new(big.Int).SetUint64(a.Hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(a.Lo))
	return v
}

func (Uint128) NBits() int   { return 128 }
func (Uint128) Signed() bool { return false }

// Bytes returns the 16-byte little-endian encoding: Lo's bytes first, then
// Hi's, matching the limb order used throughout this file.
func (a Uint128) Bytes() []byte {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[0:8], a.Lo)
	binary.LittleEndian.PutUint64(b[8:16], a.Hi)
	return b[:]
}

func (a Int128) Add(b Int128) Int128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(uint64(a.Hi), uint64(b.Hi), carry)
	return Int128{Hi: int64(hi), Lo: lo}
}

func (a Int128) Sub(b Int128) Int128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(uint64(a.Hi), uint64(b.Hi), borrow)
	return Int128{Hi: int64(hi), Lo: lo}
}

func (a Int128) Shl(s uint) Int128 {
	u := Uint128{Hi: uint64(a.Hi), Lo: a.Lo}.Shl(s)
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}

func (a Int128) ShrLogical(s uint) Int128 {
	u := Uint128{Hi: uint64(a.Hi), Lo: a.Lo}.ShrLogical(s)
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}

func (a Int128) And(b Int128) Int128 {
	return Int128{Hi: a.Hi & b.Hi, Lo: a.Lo & b.Lo}
}

func (a Int128) Not() Int128 {
	return Int128{Hi: ^a.Hi, Lo: ^a.Lo}
}

func (a Int128) Cmp(b Int128) int {
	switch {
	case a.Hi != b.Hi:
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	case a.Lo != b.Lo:
		if a.Lo < b.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (Int128) FromInt64(i int64) Int128 {
	hi := int64(0)
	if i < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(i)}
}

func (a Int128) BigInt() *big.Int {
	if a.Hi >= 0 {
		v := new(big.Int).SetUint64(uint64(a.Hi))
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(a.Lo))
		return v
	}
	// Negative: compute the magnitude of the two's-complement negation.
	neg := Int128{Hi: ^a.Hi, Lo: ^a.Lo}.Add(Int128{Hi: 0, Lo: 1})
	v := new(big.Int).SetUint64(uint64(neg.Hi))
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(neg.Lo))
	return v.Neg(v)
}

func (Int128) NBits() int   { return 128 }
func (Int128) Signed() bool { return true }

// Bytes returns the 16-byte little-endian two's-complement encoding: Lo's
// bytes first, then Hi's.
func (a Int128) Bytes() []byte {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[0:8], a.Lo)
	binary.LittleEndian.PutUint64(b[8:16], uint64(a.Hi))
	return b[:]
}
