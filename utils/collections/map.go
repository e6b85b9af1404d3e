package collections

// ReadOnlyMap is a flat key/value mapping that cannot be mutated through
// its own methods.
type ReadOnlyMap[K comparable, V any] interface {
	Contains(k K) bool
	Get(k K) (V, error)
	Size() int
	Keys() []K
	Values() []V
	// Range calls f for every entry until f returns false.
	Range(f func(k K, v V) bool)
	// ToMap returns a fresh Go map holding every entry.
	ToMap() map[K]V
}

type Map[K comparable, V any] interface {
	ReadOnlyMap[K, V]
	Put(k K, v V, forced bool) error
	Delete(k K) error
}
