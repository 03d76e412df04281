package conflict

import "slices"

// entitySet keeps entities in the order they were added and ignores duplicates.
type entitySet[T comparable] struct {
	entries []T
}

func (set *entitySet[T]) Count() int {
	return len(set.entries)
}

func (set *entitySet[T]) Contains(elt T) bool {
	return slices.Contains(set.entries, elt)
}

// Insert adds elt unless it's already present and reports whether it was added.
func (set *entitySet[T]) Insert(elt T) bool {
	if set.Contains(elt) {
		return false
	}
	set.entries = append(set.entries, elt)
	return true
}

// Remove reports whether elt was present.
func (set *entitySet[T]) Remove(elt T) bool {
	i := slices.Index(set.entries, elt)
	if i < 0 {
		return false
	}
	set.entries = slices.Delete(set.entries, i, i+1)
	return true
}

func (set *entitySet[T]) Clear() {
	clear(set.entries)
	set.entries = set.entries[:0]
}

func (set *entitySet[T]) Each(f func(elt T)) {
	for _, elt := range set.entries {
		f(elt)
	}
}

// Slice returns a copy of the entries.
func (set *entitySet[T]) Slice() []T {
	return slices.Clone(set.entries)
}
