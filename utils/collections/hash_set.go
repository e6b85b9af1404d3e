package collections

import "golang.org/x/exp/maps"

type hashSet[R comparable, V any] struct {
	entries  map[R]V
	hashFunc HashSetHashFunc[R, V]
}

type HashSetHashFunc[R comparable, V any] func(V) R

func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return &hashSet[R, V]{
		entries:  make(map[R]V),
		hashFunc: f,
	}
}

// NewKeySet returns a Set of comparable elements hashed by identity.
func NewKeySet[V comparable]() Set[V] {
	return NewHashSet(func(v V) V {
		return v
	})
}

func (s *hashSet[R, V]) Contains(v V) bool {
	_, ok := s.entries[s.hashFunc(v)]
	return ok
}

func (s *hashSet[R, V]) Add(v V) error {
	hash := s.hashFunc(v)
	if _, ok := s.entries[hash]; ok {
		return ErrValueExisted
	}
	s.entries[hash] = v
	return nil
}

func (s *hashSet[R, V]) Remove(v V) error {
	hash := s.hashFunc(v)
	if _, ok := s.entries[hash]; !ok {
		return ErrValueNotExisted
	}
	delete(s.entries, hash)
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}

func (s *hashSet[R, V]) Entries() []V {
	return maps.Values(s.entries)
}

func (s *hashSet[R, V]) Range(f func(v V) bool) {
	for _, v := range s.entries {
		if !f(v) {
			return
		}
	}
}
