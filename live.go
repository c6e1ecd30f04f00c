package safeseq

// Live returns the addresses of all live targets among ptrs, in order,
// silently skipping nil and dangling entries. This is the documented policy
// for aggregate consumers: treat invalidated entries as absent, rather than
// failing the whole traversal.
func Live[T any](ptrs []*Ptr[T]) []*T {
	var targets []*T
	for _, ptr := range ptrs {
		if p, err := ptr.Get(); err == nil {
			targets = append(targets, p)
		}
	}
	return targets
}

// CountLive returns the number of live entries among ptrs.
func CountLive[T any](ptrs []*Ptr[T]) (n int) {
	for _, ptr := range ptrs {
		if ptr.Alive() {
			n++
		}
	}
	return n
}
