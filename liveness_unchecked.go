//go:build safeseq_unchecked

package safeseq

// liveness compiles to nothing in unchecked builds: Ptr reduces to a plain
// address, with only the nil check retained. See the package documentation,
// for the safeseq_unchecked build tag.
type liveness struct{}

func newLiveness() *liveness { return nil }

func (x *liveness) kill() {}

func (x *liveness) alive() bool { return true }
