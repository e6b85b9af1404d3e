package collections

import "golang.org/x/exp/maps"

type hashMap[K comparable, V any] struct {
	entries map[K]V
}

func NewHashMap[K comparable, V any]() Map[K, V] {
	return &hashMap[K, V]{
		entries: make(map[K]V),
	}
}

// FromMap returns a mutable Map holding a copy of m. Later changes to m
// are not observed by the returned Map and vice versa.
func FromMap[K comparable, V any](m map[K]V) Map[K, V] {
	entries := maps.Clone(m)
	if entries == nil {
		entries = make(map[K]V)
	}
	return &hashMap[K, V]{
		entries: entries,
	}
}

func (m *hashMap[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

func (m *hashMap[K, V]) Put(k K, v V, forced bool) error {
	if !forced && m.Contains(k) {
		return ErrValueExisted
	}
	m.entries[k] = v
	return nil
}

func (m *hashMap[K, V]) Get(k K) (v V, err error) {
	v, ok := m.entries[k]
	if !ok {
		return v, ErrValueNotExisted
	}
	return v, nil
}

func (m *hashMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrValueNotExisted
	}
	delete(m.entries, k)
	return nil
}

func (m *hashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *hashMap[K, V]) Keys() []K {
	return maps.Keys(m.entries)
}

func (m *hashMap[K, V]) Values() []V {
	return maps.Values(m.entries)
}

func (m *hashMap[K, V]) Range(f func(k K, v V) bool) {
	for k, v := range m.entries {
		if !f(k, v) {
			return
		}
	}
}

func (m *hashMap[K, V]) ToMap() map[K]V {
	return maps.Clone(m.entries)
}
