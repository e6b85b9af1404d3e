package collections

import "golang.org/x/exp/maps"

// immutableMap is a snapshot. It owns its entries exclusively and hands
// out copies only, so neither the producer nor the consumer of a snapshot
// can change what the other sees.
type immutableMap[K comparable, V any] struct {
	entries map[K]V
}

// NewImmutableMap returns a read-only snapshot of m.
func NewImmutableMap[K comparable, V any](m map[K]V) ReadOnlyMap[K, V] {
	return &immutableMap[K, V]{
		entries: maps.Clone(m),
	}
}

// Freeze wraps entries as a read-only map without copying. Ownership of
// entries moves to the returned map: the caller must drop every reference
// to entries after the call.
func Freeze[K comparable, V any](entries map[K]V) ReadOnlyMap[K, V] {
	return &immutableMap[K, V]{
		entries: entries,
	}
}

func EmptyMap[K comparable, V any]() ReadOnlyMap[K, V] {
	return Freeze[K, V](nil)
}

func (m *immutableMap[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

func (m *immutableMap[K, V]) Get(k K) (v V, err error) {
	v, ok := m.entries[k]
	if !ok {
		return v, ErrValueNotExisted
	}
	return v, nil
}

func (m *immutableMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *immutableMap[K, V]) Keys() []K {
	return maps.Keys(m.entries)
}

func (m *immutableMap[K, V]) Values() []V {
	return maps.Values(m.entries)
}

func (m *immutableMap[K, V]) Range(f func(k K, v V) bool) {
	for k, v := range m.entries {
		if !f(k, v) {
			return
		}
	}
}

func (m *immutableMap[K, V]) ToMap() map[K]V {
	ret := make(map[K]V, len(m.entries))
	maps.Copy(ret, m.entries)
	return ret
}
