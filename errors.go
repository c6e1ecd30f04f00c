package safeseq

import (
	"errors"
)

var (
	// ErrAlreadyLocked is returned by [Sequence.Lock] when the sequence is
	// already held by another (unreleased) [SizeLock].
	ErrAlreadyLocked = errors.New(`safeseq: sequence already locked`)

	// ErrStructureLocked is returned by structural mutators invoked on a
	// locked [Sequence]. The sequence is left unmodified.
	ErrStructureLocked = errors.New(`safeseq: structure locked`)

	// ErrIndexOutOfRange is returned for any index outside [0, Len).
	ErrIndexOutOfRange = errors.New(`safeseq: index out of range`)

	// ErrDanglingPointer is returned when dereferencing a [Ptr] whose target
	// [Obj] has been closed, or a nil [Ptr].
	ErrDanglingPointer = errors.New(`safeseq: dangling pointer`)

	// ErrUseAfterUnlock is returned when an [ElemPtr] (or the [SizeLock] it
	// was obtained from) is used after the lock was released.
	ErrUseAfterUnlock = errors.New(`safeseq: use after unlock`)
)
