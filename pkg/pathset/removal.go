package pathset

import (
	"iter"
	"slices"
)

// RemovalSet holds segments that must not appear in a merged value.
// Membership is exact string equality.
type RemovalSet map[string]struct{}

// NewRemovalSet builds a set from the given segments. Entries are not split
// on ':'.
func NewRemovalSet(segments ...string) RemovalSet {
	set := make(RemovalSet, len(segments))
	for _, s := range segments {
		set[s] = struct{}{}
	}
	return set
}

// Add inserts segments into the set.
func (r RemovalSet) Add(segments ...string) {
	for _, s := range segments {
		r[s] = struct{}{}
	}
}

// Contains reports whether segment is in the set. A nil set contains nothing.
func (r RemovalSet) Contains(segment string) bool {
	_, ok := r[segment]
	return ok
}

// Sorted returns the members in lexical order, mostly for logging.
func (r RemovalSet) Sorted() []string {
	return slices.Sorted(r.All())
}

// All yields the members in unspecified order.
func (r RemovalSet) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s := range r {
			if !yield(s) {
				return
			}
		}
	}
}
