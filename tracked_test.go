//go:build !safeseq_unchecked

package safeseq

import (
	"errors"
	"testing"
)

func TestNewObj(t *testing.T) {
	obj := NewObj(`elephant`)

	if obj == nil {
		t.Fatal("Expected obj not to be nil")
	}

	if !obj.Alive() {
		t.Fatal("Expected new obj to be alive")
	}

	if *obj.Get() != `elephant` {
		t.Fatalf("Unexpected value: %q", *obj.Get())
	}
}

func TestObj_Set(t *testing.T) {
	obj := NewObj(1)
	obj.Set(2)

	if *obj.Get() != 2 {
		t.Fatalf("Expected 2, got %d", *obj.Get())
	}
}

func TestObj_Get_transparent(t *testing.T) {
	obj := NewObj(`a`)

	// the wrapper owns its value - access through it never fails
	*obj.Get() = `b`
	obj.Close()

	if *obj.Get() != `b` {
		t.Fatalf("Expected b, got %q", *obj.Get())
	}
}

func TestPtr_danglingAfterClose(t *testing.T) {
	obj := NewObj(`hippopotamus`)
	ptr := obj.Ptr()

	if v, err := ptr.Deref(); err != nil || v != `hippopotamus` {
		t.Fatalf("Expected (hippopotamus, nil), got (%q, %v)", v, err)
	}

	obj.Close()

	if ptr.Alive() {
		t.Fatal("Expected ptr not to be alive after close")
	}

	// the check happens on every dereference, not just the first
	for i := 0; i < 3; i++ {
		if _, err := ptr.Get(); !errors.Is(err, ErrDanglingPointer) {
			t.Fatalf("Expected ErrDanglingPointer, got %v", err)
		}
		if _, err := ptr.Deref(); !errors.Is(err, ErrDanglingPointer) {
			t.Fatalf("Expected ErrDanglingPointer, got %v", err)
		}
	}
}

func TestObj_Close_idempotent(t *testing.T) {
	obj := NewObj(1)
	ptr := obj.Ptr()

	obj.Close()
	obj.Close()

	if obj.Alive() {
		t.Fatal("Expected obj not to be alive")
	}

	if _, err := ptr.Get(); !errors.Is(err, ErrDanglingPointer) {
		t.Fatalf("Expected ErrDanglingPointer, got %v", err)
	}
}

func TestPtr_nil(t *testing.T) {
	var ptr *Ptr[string]

	if ptr.Alive() {
		t.Fatal("Expected nil ptr not to be alive")
	}

	if _, err := ptr.Get(); !errors.Is(err, ErrDanglingPointer) {
		t.Fatalf("Expected ErrDanglingPointer, got %v", err)
	}
}

func TestObj_Ptr_sharedFlag(t *testing.T) {
	obj := NewObj(1)
	p1 := obj.Ptr()
	p2 := obj.Ptr()

	if !p1.Alive() || !p2.Alive() {
		t.Fatal("Expected both ptrs to be alive")
	}

	obj.Close()

	if p1.Alive() || p2.Alive() {
		t.Fatal("Expected both ptrs to observe the close")
	}
}

func TestPtr_sameTarget(t *testing.T) {
	obj := NewObj(1)

	a, err := obj.Ptr().Get()
	if err != nil {
		t.Fatalf("Expected nil error, got %v", err)
	}

	b, err := obj.Ptr().Get()
	if err != nil {
		t.Fatalf("Expected nil error, got %v", err)
	}

	if a != b || a != obj.Get() {
		t.Fatal("Expected all ptrs to share the wrapper's target")
	}
}

// Each hop of a pointer chain checks its own tracker.
func TestPtr_chain(t *testing.T) {
	inner := NewObj(`giraffe`)
	innerPtr := inner.Ptr()

	outer := NewObj(innerPtr)
	outerPtr := outer.Ptr()

	hop, err := outerPtr.Deref()
	if err != nil {
		t.Fatalf("Expected nil error, got %v", err)
	}
	if v, err := hop.Deref(); err != nil || v != `giraffe` {
		t.Fatalf("Expected (giraffe, nil), got (%q, %v)", v, err)
	}

	// closing the inner wrapper breaks only the second hop
	inner.Close()
	hop, err = outerPtr.Deref()
	if err != nil {
		t.Fatalf("Expected first hop to remain valid, got %v", err)
	}
	if _, err := hop.Deref(); !errors.Is(err, ErrDanglingPointer) {
		t.Fatalf("Expected ErrDanglingPointer, got %v", err)
	}

	// closing the outer wrapper breaks the first hop too
	outer.Close()
	if _, err := outerPtr.Deref(); !errors.Is(err, ErrDanglingPointer) {
		t.Fatalf("Expected ErrDanglingPointer, got %v", err)
	}
}
