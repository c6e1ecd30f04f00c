package safeseq

type (
	// SizeLock is the guard holding a Sequence in the structure-locked state.
	// Instances are created only by Sequence.Lock, and must not be copied;
	// there is at most one live guard per sequence.
	//
	// Release must be called on every exit path (typically via defer) - the
	// sequence stays locked until then.
	SizeLock[T any] struct {
		seq      *Sequence[T]
		released bool
	}

	// ElemPtr is a direct pointer to a sequence element, obtained from a
	// SizeLock, and valid for exactly as long as that lock is held. Every
	// access re-checks the lock, failing with ErrUseAfterUnlock once it has
	// been released.
	ElemPtr[T any] struct {
		lock  *SizeLock[T]
		index int
	}
)

// ElemPtr returns a pointer to the element at index i. The underlying
// address is stable while the lock is held - nothing can relocate the
// backing storage. Fails with ErrUseAfterUnlock if the lock was released,
// or ErrIndexOutOfRange.
func (x *SizeLock[T]) ElemPtr(i int) (*ElemPtr[T], error) {
	if x.released {
		return nil, ErrUseAfterUnlock
	}
	if i < 0 || i >= len(x.seq.elems) {
		return nil, ErrIndexOutOfRange
	}
	return &ElemPtr[T]{lock: x, index: i}, nil
}

// Release unlocks the sequence. It is idempotent, never fails, and
// invalidates every ElemPtr obtained from this lock.
func (x *SizeLock[T]) Release() {
	if x.released {
		return
	}
	x.released = true
	x.seq.locked = false
	x.seq.log.Trace().
		Int(`len`, len(x.seq.elems)).
		Log(`safeseq: structure unlocked`)
}

// Released returns true once Release has been called.
func (x *SizeLock[T]) Released() bool { return x.released }

// Get returns the address of the target element, checking that the lock is
// still held. The returned pointer must not outlive the lock; obtain it
// again rather than retaining it.
func (x *ElemPtr[T]) Get() (*T, error) {
	if x.lock.released {
		return nil, ErrUseAfterUnlock
	}
	return &x.lock.seq.elems[x.index], nil
}

// Deref returns a copy of the target element, checking that the lock is
// still held.
func (x *ElemPtr[T]) Deref() (value T, err error) {
	p, err := x.Get()
	if err != nil {
		return value, err
	}
	return *p, nil
}

// Set assigns the target element in place, checking that the lock is still
// held.
func (x *ElemPtr[T]) Set(value T) error {
	p, err := x.Get()
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Index returns the element index this pointer was obtained for.
func (x *ElemPtr[T]) Index() int { return x.index }
