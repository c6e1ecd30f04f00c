package safeseq

import (
	"golang.org/x/exp/constraints"
	"sort"
)

// Sort sorts the sequence in ascending order, in place. Sorting relocates
// elements, so it counts as a structural mutation: it fails with
// ErrStructureLocked while the sequence is locked.
func Sort[T constraints.Ordered](x *Sequence[T]) error {
	if err := x.structural(`sort`); err != nil {
		return err
	}
	sort.Slice(x.elems, func(i, j int) bool {
		return x.elems[i] < x.elems[j]
	})
	return nil
}

// Search returns the smallest index at which value would be inserted to keep
// a sorted sequence sorted, i.e. the index of the first element >= value, or
// Len if there is none. The sequence must already be sorted ascending.
func Search[T constraints.Ordered](x *Sequence[T], value T) int {
	return sort.Search(len(x.elems), func(i int) bool {
		return x.elems[i] >= value
	})
}
