package safeseq

import (
	"github.com/joeycumines/logiface"
)

type (
	// SequenceConfig models optional configuration, for NewSequence.
	SequenceConfig struct {
		// Logger receives structured events for lock transitions and
		// rejected structural mutations, if non-nil. Nil disables logging.
		Logger *logiface.Logger[logiface.Event]

		// Capacity pre-allocates backing storage for at least this many
		// elements, if positive. Defaults to the number of initial values.
		Capacity int
	}

	// Sequence is a dynamic ordered sequence that can be structurally locked.
	//
	// While locked (see Sequence.Lock), every operation that could grow,
	// shrink, or relocate elements fails with ErrStructureLocked, leaving
	// the sequence unchanged. Operations that only read, or mutate element
	// contents in place, remain allowed.
	//
	// Instances must be initialized using the NewSequence factory.
	// Not safe for concurrent use.
	Sequence[T any] struct {
		elems  []T
		log    *logiface.Logger[logiface.Event]
		locked bool
	}
)

// NewSequence initializes a new Sequence holding the provided values, using
// the provided SequenceConfig, which may be nil.
func NewSequence[T any](cfg *SequenceConfig, values ...T) *Sequence[T] {
	var x Sequence[T]
	capacity := len(values)
	if cfg != nil {
		if cfg.Capacity > capacity {
			capacity = cfg.Capacity
		}
		x.log = cfg.Logger
	}
	x.elems = make([]T, len(values), capacity)
	copy(x.elems, values)
	return &x
}

// Len returns the number of elements.
func (x *Sequence[T]) Len() int { return len(x.elems) }

// Cap returns the capacity of the backing storage.
func (x *Sequence[T]) Cap() int { return cap(x.elems) }

// Locked returns true while an unreleased SizeLock holds the sequence.
func (x *Sequence[T]) Locked() bool { return x.locked }

// Get returns the element at index i, or ErrIndexOutOfRange.
func (x *Sequence[T]) Get(i int) (value T, err error) {
	if i < 0 || i >= len(x.elems) {
		return value, ErrIndexOutOfRange
	}
	return x.elems[i], nil
}

// Set assigns the element at index i, in place. As it cannot relocate
// anything, it is allowed regardless of lock state.
func (x *Sequence[T]) Set(i int, value T) error {
	if i < 0 || i >= len(x.elems) {
		return ErrIndexOutOfRange
	}
	x.elems[i] = value
	return nil
}

// Values returns a copy of the elements, as a slice.
func (x *Sequence[T]) Values() []T {
	values := make([]T, len(x.elems))
	copy(values, x.elems)
	return values
}

// Append appends values to the end of the sequence, growing (and possibly
// relocating) the backing storage as needed. Fails with ErrStructureLocked
// while locked.
func (x *Sequence[T]) Append(values ...T) error {
	if err := x.structural(`append`); err != nil {
		return err
	}
	x.elems = append(x.elems, values...)
	return nil
}

// Insert inserts value at index i, shifting subsequent elements up. An index
// equal to Len appends. Fails with ErrStructureLocked while locked.
func (x *Sequence[T]) Insert(i int, value T) error {
	if err := x.structural(`insert`); err != nil {
		return err
	}
	if i < 0 || i > len(x.elems) {
		return ErrIndexOutOfRange
	}
	var zero T
	x.elems = append(x.elems, zero)
	copy(x.elems[i+1:], x.elems[i:])
	x.elems[i] = value
	return nil
}

// Erase removes the element at index i, shifting subsequent elements down.
// Fails with ErrStructureLocked while locked.
func (x *Sequence[T]) Erase(i int) error {
	if err := x.structural(`erase`); err != nil {
		return err
	}
	if i < 0 || i >= len(x.elems) {
		return ErrIndexOutOfRange
	}
	copy(x.elems[i:], x.elems[i+1:])
	var zero T
	x.elems[len(x.elems)-1] = zero
	x.elems = x.elems[:len(x.elems)-1]
	return nil
}

// PopBack removes and returns the last element. Fails with
// ErrStructureLocked while locked, or ErrIndexOutOfRange if empty.
func (x *Sequence[T]) PopBack() (value T, err error) {
	if err := x.structural(`pop back`); err != nil {
		return value, err
	}
	if len(x.elems) == 0 {
		return value, ErrIndexOutOfRange
	}
	i := len(x.elems) - 1
	value = x.elems[i]
	var zero T
	x.elems[i] = zero
	x.elems = x.elems[:i]
	return value, nil
}

// Clear removes all elements, retaining capacity. Fails with
// ErrStructureLocked while locked.
func (x *Sequence[T]) Clear() error {
	if err := x.structural(`clear`); err != nil {
		return err
	}
	var zero T
	for i := range x.elems {
		x.elems[i] = zero
	}
	x.elems = x.elems[:0]
	return nil
}

// Resize grows the sequence with zero values, or shrinks it, so that Len
// becomes n. Fails with ErrStructureLocked while locked.
func (x *Sequence[T]) Resize(n int) error {
	if err := x.structural(`resize`); err != nil {
		return err
	}
	if n < 0 {
		return ErrIndexOutOfRange
	}
	if n <= len(x.elems) {
		var zero T
		for i := n; i < len(x.elems); i++ {
			x.elems[i] = zero
		}
		x.elems = x.elems[:n]
		return nil
	}
	x.elems = append(x.elems, make([]T, n-len(x.elems))...)
	return nil
}

// Reserve grows the backing storage to hold at least n elements without
// further relocation. Fails with ErrStructureLocked while locked (growth
// relocates every element).
func (x *Sequence[T]) Reserve(n int) error {
	if err := x.structural(`reserve`); err != nil {
		return err
	}
	if n > cap(x.elems) {
		elems := make([]T, len(x.elems), n)
		copy(elems, x.elems)
		x.elems = elems
	}
	return nil
}

// Lock transitions the sequence to the structure-locked state, returning the
// guard that holds it. Fails with ErrAlreadyLocked if an unreleased SizeLock
// already holds the sequence - at most one guard is live at a time.
//
// Callers should release the guard on every exit path, e.g.
//
//	guard, err := seq.Lock()
//	if err != nil {
//		return err
//	}
//	defer guard.Release()
func (x *Sequence[T]) Lock() (*SizeLock[T], error) {
	if x.locked {
		x.log.Debug().
			Int(`len`, len(x.elems)).
			Log(`safeseq: lock rejected: already locked`)
		return nil, ErrAlreadyLocked
	}
	x.locked = true
	x.log.Trace().
		Int(`len`, len(x.elems)).
		Int(`cap`, cap(x.elems)).
		Log(`safeseq: structure locked`)
	return &SizeLock[T]{seq: x}, nil
}

// structural gates every structure-changing operation on the lock state.
func (x *Sequence[T]) structural(op string) error {
	if x.locked {
		x.log.Debug().
			Str(`op`, op).
			Int(`len`, len(x.elems)).
			Log(`safeseq: structural mutation rejected while locked`)
		return ErrStructureLocked
	}
	return nil
}
