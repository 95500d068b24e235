package collections

import "github.com/emirpasic/gods/maps/linkedhashmap"

// Map is an insertion-ordered key/value map
type Map[K comparable, V any] struct {
	inner *linkedhashmap.Map
}

// NewMap creates an empty map
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{inner: linkedhashmap.New()}
}

// Put stores value under key, replacing any previous value
func (m *Map[K, V]) Put(key K, value V) {
	m.inner.Put(key, value)
}

// PutIfAbsent stores value only when key is missing and reports whether it did
func (m *Map[K, V]) PutIfAbsent(key K, value V) bool {
	if _, found := m.inner.Get(key); found {
		return false
	}
	m.inner.Put(key, value)
	return true
}

// Get returns the value stored under key
func (m *Map[K, V]) Get(key K) (V, bool) {
	raw, found := m.inner.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	return raw.(V), true
}

// Remove deletes key
func (m *Map[K, V]) Remove(key K) {
	m.inner.Remove(key)
}

// Len returns the number of keys
func (m *Map[K, V]) Len() int {
	return m.inner.Size()
}

// Keys returns the keys in insertion order
func (m *Map[K, V]) Keys() []K {
	raw := m.inner.Keys()
	out := make([]K, len(raw))
	for i, k := range raw {
		out[i] = k.(K)
	}
	return out
}
