// Package cache provides a concurrency-safe typed map used to memoize per-type accessors.
package cache

import "sync"

// Map is a thread-safe map
type Map[K comparable, V any] struct {
	m   map[K]V
	mux sync.RWMutex
}

// Get returns a value from the map
func (m *Map[K, V]) Get(k K) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[k]
	return v, ok
}

// GetOrCreate returns the value for k, calling create and storing its result when absent.
// create runs under the write lock, so it runs at most once per key.
func (m *Map[K, V]) GetOrCreate(k K, create func(k K) V) V {
	if v, ok := m.Get(k); ok {
		return v
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	if v, ok := m.m[k]; ok {
		return v
	}
	v := create(k)
	m.m[k] = v
	return v
}

// New creates a map
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}
