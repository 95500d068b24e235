package collections

import "github.com/emirpasic/gods/sets/linkedhashset"

// Set is an insertion-ordered set of unique values
type Set[T comparable] struct {
	inner *linkedhashset.Set
}

// NewSet creates a set holding the given values, duplicates collapsed
func NewSet[T comparable](values ...T) *Set[T] {
	s := &Set[T]{inner: linkedhashset.New()}
	s.Add(values...)
	return s
}

// Add inserts values; existing values keep their position
func (s *Set[T]) Add(values ...T) {
	for _, v := range values {
		s.inner.Add(v)
	}
}

// Remove deletes values, ignoring ones not present
func (s *Set[T]) Remove(values ...T) {
	for _, v := range values {
		s.inner.Remove(v)
	}
}

// Contains reports whether v is in the set
func (s *Set[T]) Contains(v T) bool {
	return s.inner.Contains(v)
}

// Len returns the number of values
func (s *Set[T]) Len() int {
	return s.inner.Size()
}

// Empty reports whether the set has no values
func (s *Set[T]) Empty() bool {
	return s.inner.Empty()
}

// Values returns the values in insertion order
func (s *Set[T]) Values() []T {
	raw := s.inner.Values()
	out := make([]T, len(raw))
	for i, v := range raw {
		out[i] = v.(T)
	}
	return out
}

// Clone returns an independent copy
func (s *Set[T]) Clone() *Set[T] {
	return NewSet(s.Values()...)
}

// Equal reports whether both sets hold the same values, ignoring order
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, v := range s.Values() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}
