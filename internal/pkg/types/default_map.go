package types

import (
	"iter"
	"maps"
)

// DefaultMap is a map whose missing keys read as a value produced on demand.
//
// The zero value is not usable; create one with NewDefaultMap.
type DefaultMap[K comparable, V any] struct {
	data     map[K]V
	newValue func() V
}

// NewDefaultMap returns an empty map filling missing keys with newValue.
func NewDefaultMap[K comparable, V any](newValue func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:     make(map[K]V),
		newValue: newValue,
	}
}

// Get returns the value of key, storing a new default first when absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if !ok {
		val = d.newValue()
		d.data[key] = val
	}
	return val
}

// Update replaces the value of key with fn applied to its current (or
// default) value.
func (d *DefaultMap[K, V]) Update(key K, fn func(V) V) {
	d.data[key] = fn(d.Get(key))
}

// Len returns the number of stored keys.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}

// All iterates over the stored pairs in no particular order.
func (d *DefaultMap[K, V]) All() iter.Seq2[K, V] {
	return maps.All(d.data)
}
