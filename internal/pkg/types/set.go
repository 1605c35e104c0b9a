package types

import (
	"cmp"
	"maps"
	"slices"
)

// Set is a mutable hash set.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding data.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts values in place.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Has reports whether value is a member of the set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// Difference returns the members of s missing from other. Neither operand is
// modified.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	diff := make(Set[T])
	for val := range s {
		if !other.Has(val) {
			diff[val] = struct{}{}
		}
	}
	return diff
}

// Sorted returns the members of s in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(maps.Keys(s))
}
