package bitpack

import "fmt"

// OverflowError is raised whenever a value cannot be represented in the
// packed-word encoding: a pushed slot value outside its per-slot range, a
// packed word outside the range achievable for a given arity, or an arity
// that does not fit the target word width.
type OverflowError struct {
	Op    string // "push", "unpack", "packer", "unpacker"
	Value string
	Lo    string
	Hi    string
}

func (e OverflowError) Error() string {
	if e.Lo == "" && e.Hi == "" {
		return fmt.Sprintf("bitpack: overflow in %s: %s", e.Op, e.Value)
	}
	return fmt.Sprintf("bitpack: overflow in %s: value %s outside allowed range [%s, %s]", e.Op, e.Value, e.Lo, e.Hi)
}

// OutOfRangeError is raised when a packer/unpacker operation count exceeds
// the arity it was constructed with, or a result is fetched before enough
// pushes/pops have happened.
type OutOfRangeError struct {
	Op  string
	Msg string
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("bitpack: out of range in %s: %s", e.Op, e.Msg)
}

// InvalidArgumentError is raised for precondition violations that are not
// range violations, e.g. a non-zero word passed to an arity-0 unpacker.
type InvalidArgumentError struct {
	Op  string
	Msg string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("bitpack: invalid argument in %s: %s", e.Op, e.Msg)
}
