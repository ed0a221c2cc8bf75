package bitpack

import "testing"

func TestPackerUnsignedBasic(t *testing.T) {
	p, err := NewPacker[U32](3)
	if err != nil {
		t.Fatalf("NewPacker: %v", err)
	}
	for _, v := range []U32{1, 2, 3} {
		if err := p.Push(v); err != nil {
			t.Fatalf("Push(%d): %v", v, err)
		}
	}
	if _, err := p.Get(); err != nil {
		t.Fatalf("Get: %v", err)
	}
}

func TestPackerOutOfRangeOnOverPush(t *testing.T) {
	p, err := NewPacker[U32](1)
	if err != nil {
		t.Fatalf("NewPacker: %v", err)
	}
	if err := p.Push(1); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := p.Push(1); err == nil {
		t.Fatalf("expected error pushing past arity")
	} else if _, ok := err.(OutOfRangeError); !ok {
		t.Fatalf("expected OutOfRangeError, got %T", err)
	}
}

func TestPackerGetBeforeFull(t *testing.T) {
	p, err := NewPacker[U32](2)
	if err != nil {
		t.Fatalf("NewPacker: %v", err)
	}
	if err := p.Push(1); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if _, err := p.Get(); err == nil {
		t.Fatalf("expected error getting before arity reached")
	} else if _, ok := err.(OutOfRangeError); !ok {
		t.Fatalf("expected OutOfRangeError, got %T", err)
	}
}

func TestPackerRejectsOutOfSlotRange(t *testing.T) {
	p, err := NewPacker[I32](2)
	if err != nil {
		t.Fatalf("NewPacker: %v", err)
	}
	_, _, hi, err := slotRange[I32](2)
	if err != nil {
		t.Fatalf("slotRange: %v", err)
	}
	if err := p.Push(hi.Add(1)); err == nil {
		t.Fatalf("expected OverflowError pushing value above hi")
	} else if _, ok := err.(OverflowError); !ok {
		t.Fatalf("expected OverflowError, got %T", err)
	}
}

func TestNewPackerArityTooLargeSigned(t *testing.T) {
	if _, err := NewPacker[I32](32); err == nil {
		t.Fatalf("expected OverflowError for k == nbits on signed type")
	} else if _, ok := err.(OverflowError); !ok {
		t.Fatalf("expected OverflowError, got %T", err)
	}
}

func TestNewPackerArityTooLargeUnsigned(t *testing.T) {
	if _, err := NewPacker[U32](33); err == nil {
		t.Fatalf("expected OverflowError for k > nbits on unsigned type")
	} else if _, ok := err.(OverflowError); !ok {
		t.Fatalf("expected OverflowError, got %T", err)
	}
}

func TestPackUnsignedFullWidth(t *testing.T) {
	// k == nbits is legal for an unsigned type: one bit per slot.
	xs := make([]U32, 32)
	for i := range xs {
		xs[i] = U32(i % 2)
	}
	if _, err := Pack(xs); err != nil {
		t.Fatalf("Pack: %v", err)
	}
}
