// Package collection is an ordered keyed sequence: insertion order is kept and items
// can be read by position or by key.
package collection

import "iter"

type Collection[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// New builds a collection from parallel key and value slices. Extra keys or values
// are ignored. A repeated key keeps its first position and its last value.
func New[K comparable, V any](keys []K, values []V) *Collection[K, V] {
	c := &Collection[K, V]{values: make(map[K]V, len(keys))}
	n := min(len(keys), len(values))
	for i := 0; i < n; i++ {
		c.Add(keys[i], values[i])
	}
	return c
}

// FromSlice keys each value by its index.
func FromSlice[V any](values []V) *Collection[int, V] {
	c := &Collection[int, V]{values: make(map[int]V, len(values))}
	for i, v := range values {
		c.Add(i, v)
	}
	return c
}

// Add appends key, or replaces its value in place if it already exists.
func (c *Collection[K, V]) Add(key K, value V) {
	if c.values == nil {
		c.values = map[K]V{}
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

func (c *Collection[K, V]) Len() int {
	return len(c.keys)
}

// First returns the first value, or false if the collection is empty.
func (c *Collection[K, V]) First() (V, bool) {
	if len(c.keys) == 0 {
		var zero V
		return zero, false
	}
	return c.values[c.keys[0]], true
}

// Last returns the last value, or false if the collection is empty.
func (c *Collection[K, V]) Last() (V, bool) {
	if len(c.keys) == 0 {
		var zero V
		return zero, false
	}
	return c.values[c.keys[len(c.keys)-1]], true
}

// At returns the value stored under key.
func (c *Collection[K, V]) At(key K) (V, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns a copy of the keys in order.
func (c *Collection[K, V]) Keys() []K {
	return append([]K(nil), c.keys...)
}

// All iterates key/value pairs in order.
func (c *Collection[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range c.keys {
			if !yield(k, c.values[k]) {
				return
			}
		}
	}
}
