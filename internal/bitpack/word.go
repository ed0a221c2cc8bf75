// Package bitpack implements the packed-monomial bit codec: a push/pop
// accumulator that packs an ordered vector of small signed or unsigned
// integers into a single machine word, and the matching unpacker, with
// exact range checking at every step.
//
// The arithmetic is expressed against a small capability-set interface
// (Word) rather than Go's built-in numeric operators directly, so that the
// same Packer/Unpacker algorithm serves both native machine widths
// (int32/uint32/int64/uint64) and the dedicated 128-bit types in int128.go,
// which cannot participate in Go's operator-based generic arithmetic since
// they are structs.
package bitpack

import (
	"encoding/binary"
	"math/big"
)

// Word is the capability set a packable word type must provide. A type
// implementing Word[Self] describes its own arithmetic, comparison, and
// bit-width/signedness facts so Packer[T]/Unpacker[T] can be written once,
// generically, for every supported width.
type Word[Self comparable] interface {
	Add(other Self) Self
	Sub(other Self) Self
	// Shl is a logical left shift: bits shifted past the type's width are
	// discarded, and a shift count >= NBits() yields the zero value (Go's
	// own shift semantics already guarantee this for native operators; the
	// 128-bit types replicate it explicitly).
	Shl(s uint) Self
	// ShrLogical is an unsigned (logical) right shift: the vacated high
	// bits are filled with zero regardless of the type's signedness.
	ShrLogical(s uint) Self
	And(other Self) Self
	Not() Self
	// Cmp returns -1, 0, or +1, comparing according to this type's own
	// signedness (so I32/I64/Int128 compare as signed, U32/U64/Uint128 as
	// unsigned).
	Cmp(other Self) int
	FromInt64(i int64) Self
	// BigInt returns an arbitrary-precision view of the value, needed
	// because a single packed exponent can exceed 64 bits (e.g. arity-1
	// signed packing uses the type's full range) and degree sums must not
	// silently wrap.
	BigInt() *big.Int
	// NBits is the number of value bits of the type: bit width for both
	// signed and unsigned native types (digits+1 for signed already equals
	// the full two's-complement width; digits for unsigned is the full
	// width too).
	NBits() int
	Signed() bool
	// Bytes returns the value's canonical fixed-width little-endian
	// encoding (two's complement for signed types). Used for hashing the
	// packed word directly, without going through BigInt's allocations.
	Bytes() []byte
}

// I32 is a packable 32-bit signed word.
type I32 int32

func (a I32) Add(b I32) I32        { return a + b }
func (a I32) Sub(b I32) I32        { return a - b }
func (a I32) Shl(s uint) I32       { return shl32(a, s) }
func (a I32) ShrLogical(s uint) I32 { return I32(shrLogical32(uint32(a), s)) }
func (a I32) And(b I32) I32        { return a & b }
func (a I32) Not() I32             { return ^a }
func (a I32) Cmp(b I32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
func (I32) FromInt64(i int64) I32 { return I32(int32(i)) }
func (a I32) BigInt() *big.Int    { return big.NewInt(int64(a)) }
func (I32) NBits() int            { return 32 }
func (I32) Signed() bool          { return true }
func (a I32) Bytes() []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(a))
	return b[:]
}

// U32 is a packable 32-bit unsigned word.
type U32 uint32

func (a U32) Add(b U32) U32        { return a + b }
func (a U32) Sub(b U32) U32        { return a - b }
func (a U32) Shl(s uint) U32       { return U32(shl32(I32(a), s)) }
func (a U32) ShrLogical(s uint) U32 { return U32(shrLogical32(uint32(a), s)) }
func (a U32) And(b U32) U32        { return a & b }
func (a U32) Not() U32             { return ^a }
func (a U32) Cmp(b U32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
func (U32) FromInt64(i int64) U32 { return U32(uint32(i)) }
func (a U32) BigInt() *big.Int    { return new(big.Int).SetUint64(uint64(a)) }
func (U32) NBits() int            { return 32 }
func (U32) Signed() bool          { return false }
func (a U32) Bytes() []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(a))
	return b[:]
}

// I64 is a packable 64-bit signed word.
type I64 int64

func (a I64) Add(b I64) I64        { return a + b }
func (a I64) Sub(b I64) I64        { return a - b }
func (a I64) Shl(s uint) I64       { return shl64(a, s) }
func (a I64) ShrLogical(s uint) I64 { return I64(shrLogical64(uint64(a), s)) }
func (a I64) And(b I64) I64        { return a & b }
func (a I64) Not() I64             { return ^a }
func (a I64) Cmp(b I64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
func (I64) FromInt64(i int64) I64 { return I64(i) }
func (a I64) BigInt() *big.Int    { return big.NewInt(int64(a)) }
func (I64) NBits() int            { return 64 }
func (I64) Signed() bool          { return true }
func (a I64) Bytes() []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(a))
	return b[:]
}

// U64 is a packable 64-bit unsigned word.
type U64 uint64

func (a U64) Add(b U64) U64        { return a + b }
func (a U64) Sub(b U64) U64        { return a - b }
func (a U64) Shl(s uint) U64       { return U64(shl64(I64(a), s)) }
func (a U64) ShrLogical(s uint) U64 { return U64(shrLogical64(uint64(a), s)) }
func (a U64) And(b U64) U64        { return a & b }
func (a U64) Not() U64             { return ^a }
func (a U64) Cmp(b U64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
func (U64) FromInt64(i int64) U64 { return U64(uint64(i)) }
func (a U64) BigInt() *big.Int    { return new(big.Int).SetUint64(uint64(a)) }
func (U64) NBits() int            { return 64 }
func (U64) Signed() bool          { return false }
func (a U64) Bytes() []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(a))
	return b[:]
}

// shl32/shl64 implement Go's own shift semantics explicitly (shift count
// >= width yields zero) so the behaviour is documented in one place and
// shared by the signed and unsigned wrappers.
func shl32(a I32, s uint) I32 {
	if s >= 32 {
		return 0
	}
	return a << s
}

func shrLogical32(a uint32, s uint) uint32 {
	if s >= 32 {
		return 0
	}
	return a >> s
}

func shl64(a I64, s uint) I64 {
	if s >= 64 {
		return 0
	}
	return a << s
}

func shrLogical64(a uint64, s uint) uint64 {
	if s >= 64 {
		return 0
	}
	return a >> s
}
