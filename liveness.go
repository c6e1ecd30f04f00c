//go:build !safeseq_unchecked

package safeseq

// liveness is the shared flag cell between an Obj and every Ptr registered
// against it. Single writer (Obj.Close), any number of readers. The flag
// transitions alive -> dead exactly once, and never back.
type liveness struct {
	dead bool
}

func newLiveness() *liveness { return new(liveness) }

func (x *liveness) kill() {
	if x != nil {
		x.dead = true
	}
}

func (x *liveness) alive() bool { return x != nil && !x.dead }
