// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements an ordered map that retains the order in
// which items were added, while also providing fast key-based lookup.
// The insertion order is significant for glide: nearest-neighbor
// tie-breaking in the scroll coordinator is defined in terms of
// registration order, which this map preserves.
package ordmap

import "slices"

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map combining the order of a slice
// and the fast key lookup of a map. The map stores an index
// into the slice of key-value pairs.
type Map[K comparable, V any] struct {

	// Order is an ordered list of values and associated keys, in the order added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{Map: make(map[K]int)}
}

func (om *Map[K, V]) init() {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
}

// Add adds a new value for the given key. If the key already exists,
// its value is updated in place, preserving the original order.
func (om *Map[K, V]) Add(key K, val V) {
	om.init()
	if idx, has := om.Map[key]; has {
		om.Order[idx].Value = val
		return
	}
	om.Map[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// ValueByKey returns the value for the given key, with a zero value
// and false returned for a missing key.
func (om *Map[K, V]) ValueByKey(key K) (V, bool) {
	idx, ok := om.Map[key]
	if ok {
		return om.Order[idx].Value, true
	}
	var zv V
	return zv, false
}

// HasKey returns whether the map contains the given key.
func (om *Map[K, V]) HasKey(key K) bool {
	_, has := om.Map[key]
	return has
}

// DeleteKey deletes the item with the given key, returning false if
// the key was not found. Deletion preserves the order of the
// remaining items.
func (om *Map[K, V]) DeleteKey(key K) bool {
	idx, ok := om.Map[key]
	if !ok {
		return false
	}
	om.Order = slices.Delete(om.Order, idx, idx+1)
	delete(om.Map, key)
	for k, i := range om.Map {
		if i > idx {
			om.Map[k] = i - 1
		}
	}
	return true
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	return len(om.Order)
}

// Reset resets the map, removing any existing elements.
func (om *Map[K, V]) Reset() {
	om.Order = nil
	om.Map = nil
}
