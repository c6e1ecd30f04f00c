package safeseq

type (
	// Obj wraps a value so it can be targeted by liveness-checked pointers.
	// It owns the value and the liveness flag; Close flips the flag,
	// permanently invalidating every Ptr obtained from this wrapper.
	//
	// Instances must be initialized using the NewObj factory.
	// Not safe for concurrent use.
	Obj[T any] struct {
		value T
		live  *liveness
	}

	// Ptr is a weak, liveness-checked pointer to the value held by an Obj.
	// It confers no ownership; the liveness flag is re-checked on every
	// access, so use after the wrapper's Close fails with
	// ErrDanglingPointer at the point of use, rather than returning stale
	// data. A nil Ptr is treated as dangling.
	Ptr[T any] struct {
		obj  *Obj[T]
		live *liveness
	}
)

// NewObj initializes a new Obj holding value.
func NewObj[T any](value T) *Obj[T] {
	return &Obj[T]{value: value, live: newLiveness()}
}

// Get returns the address of the wrapped value. Always valid - the wrapper
// owns its value, and access through the wrapper itself is transparent.
func (x *Obj[T]) Get() *T { return &x.value }

// Set assigns the wrapped value.
func (x *Obj[T]) Set(value T) { x.value = value }

// Alive returns true until Close is called.
func (x *Obj[T]) Alive() bool { return x.live.alive() }

// Ptr registers a new pointer against this wrapper. Any number of pointers
// may share one wrapper; all observe the same liveness flag.
func (x *Obj[T]) Ptr() *Ptr[T] {
	return &Ptr[T]{obj: x, live: x.live}
}

// Close marks the wrapped value as dead, invalidating every Ptr registered
// against this wrapper. Idempotent; the flag never flips back.
func (x *Obj[T]) Close() { x.live.kill() }

// Alive returns true while the target wrapper has not been closed. A nil
// Ptr is not alive.
func (x *Ptr[T]) Alive() bool {
	return x != nil && x.obj != nil && x.live.alive()
}

// Get returns the address of the target value, or ErrDanglingPointer if the
// target's wrapper has been closed (or the pointer is nil). The liveness
// check happens on every call.
func (x *Ptr[T]) Get() (*T, error) {
	if !x.Alive() {
		return nil, ErrDanglingPointer
	}
	return &x.obj.value, nil
}

// Deref returns a copy of the target value, or ErrDanglingPointer.
func (x *Ptr[T]) Deref() (value T, err error) {
	p, err := x.Get()
	if err != nil {
		return value, err
	}
	return *p, nil
}
