package storage

import (
	"cmp"
	"maps"
	"slices"
)

type Pair[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Storage is a keyed container with no ordering of its own.
// Listing methods return their results sorted by key so callers get stable output.
type Storage[K cmp.Ordered, V any] interface {

	// Get returns the value associated with the key.
	// If the key is not found, it returns the zero value of the value type and false.
	Get(key K) (V, bool)

	// Set inserts the value or replaces the one already stored under the key.
	Set(key K, value V)

	// Delete removes the key and reports whether it was present.
	Delete(key K) bool

	Len() int

	// Keys returns all keys in ascending order.
	Keys() []K

	// GetAll returns all elements in ascending key order.
	GetAll() []Pair[K, V]
}

// InMemoryStorage is not safe for concurrent use.
type InMemoryStorage[K cmp.Ordered, V any] struct {
	storage map[K]V
}

func NewInMemoryStorage[K cmp.Ordered, V any]() *InMemoryStorage[K, V] {
	return &InMemoryStorage[K, V]{storage: make(map[K]V)}
}

func (i *InMemoryStorage[K, V]) Get(key K) (V, bool) {
	value, ok := i.storage[key]
	return value, ok
}

func (i *InMemoryStorage[K, V]) Set(key K, value V) {
	i.storage[key] = value
}

func (i *InMemoryStorage[K, V]) Delete(key K) bool {
	if _, ok := i.storage[key]; !ok {
		return false
	}

	delete(i.storage, key)
	return true
}

func (i *InMemoryStorage[K, V]) Len() int {
	return len(i.storage)
}

func (i *InMemoryStorage[K, V]) Keys() []K {
	return slices.Sorted(maps.Keys(i.storage))
}

func (i *InMemoryStorage[K, V]) GetAll() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(i.storage))
	for _, key := range i.Keys() {
		pairs = append(pairs, Pair[K, V]{Key: key, Value: i.storage[key]})
	}

	return pairs
}
