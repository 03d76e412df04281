package conflict

import "github.com/cespare/xxhash/v2"

// Kind tags a category of collidable, such as "player" or "wall". Listeners and
// collision information filter each other by kind.
type Kind uint64

// KindOf derives a kind from its name, so kinds can be declared by name in config and
// scripts and still be compared as integers.
func KindOf(name string) Kind {
	return Kind(xxhash.Sum64String(name))
}

// KindSet is an allowlist of kinds. A nil set accepts every kind, an empty set none.
type KindSet map[Kind]struct{}

// NewKindSet returns a set of exactly the given kinds. Called without arguments it
// returns an empty set that accepts nothing.
func NewKindSet(kinds ...Kind) KindSet {
	set := make(KindSet, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return set
}

// AnyKind accepts every kind.
var AnyKind KindSet = nil

func (s KindSet) Accepts(k Kind) bool {
	if s == nil {
		return true
	}
	_, ok := s[k]
	return ok
}

func (s KindSet) Add(kinds ...Kind) {
	for _, k := range kinds {
		s[k] = struct{}{}
	}
}

func (s KindSet) Remove(k Kind) {
	delete(s, k)
}

// Clone returns an independent copy, preserving nil.
func (s KindSet) Clone() KindSet {
	if s == nil {
		return nil
	}
	clone := make(KindSet, len(s))
	for k := range s {
		clone[k] = struct{}{}
	}
	return clone
}
