// Package safeseq implements runtime memory-safety contracts for sequential
// data: a structurally lockable sequence, with guard-scoped element pointers,
// and a liveness-tracked wrapper + pointer pair, for freestanding values.
//
// Locking a [Sequence] freezes its structure, meaning any operation that
// could grow, shrink, or relocate the backing storage fails with
// [ErrStructureLocked], rather than executing. Element addresses obtained
// through the resulting [SizeLock] are therefore stable for exactly as long
// as the guard is held, and every access through an [ElemPtr] after release
// fails with [ErrUseAfterUnlock]. In-place element mutation remains allowed
// throughout.
//
// [Obj] and [Ptr] provide the orthogonal mechanism for values that don't
// live in a sequence: an [Obj] owns a value and a liveness flag, a [Ptr] is
// a weak observer that re-checks that flag on every dereference, failing
// with [ErrDanglingPointer] once the wrapper has been closed. Pointers
// confer no ownership over the target, and may themselves be wrapped in an
// [Obj], producing chains where each hop is independently checked.
//
// None of the types in this package are safe for concurrent use; lock state
// and liveness flags are plain fields. Callers that share a Sequence, Obj,
// or any pointer derived from them across goroutines must provide their own
// synchronization.
//
// Building with the safeseq_unchecked tag replaces the liveness bookkeeping
// with a no-op implementation, reducing [Ptr] to a plain address with no
// checking. Intended for builds where the checks have already been proven
// redundant; the structure-lock contract is unaffected.
package safeseq
