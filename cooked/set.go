package cooked

import "slices"

// Set is an unordered collection of cooked values with value equality.
// The zero value is not usable; create sets with NewSet.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	s.Add(items...)
	return s
}

// Add inserts items, ignoring the ones already present.
func (s Set[T]) Add(items ...T) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return len(s)
}

// Union adds every element of other to s.
func (s Set[T]) Union(other Set[T]) {
	for item := range other {
		s[item] = struct{}{}
	}
}

// Difference returns the elements of s that are not in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	result := make(Set[T])
	for item := range s {
		if !other.Contains(item) {
			result[item] = struct{}{}
		}
	}
	return result
}

// Equal reports whether both sets hold exactly the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for item := range s {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// Sorted returns the elements ordered by compare.
func (s Set[T]) Sorted(compare func(a, b T) int) []T {
	items := make([]T, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	slices.SortFunc(items, compare)
	return items
}

// SoundBankSet, MediaSet and ExternalSourceSet are the dependency sets
// accumulated while resolving an asset.
type (
	SoundBankSet      = Set[SoundBank]
	MediaSet          = Set[Media]
	ExternalSourceSet = Set[ExternalSource]
)

func sameElements[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return NewSet(a...).Equal(NewSet(b...))
}
