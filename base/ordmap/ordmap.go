// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ordmap implements an ordered map that retains the order of items
added to a slice, while also providing fast key-based map lookup of items,
using generics.

The slice holds the Key and Value for items as they are added, and the
map holds the index into the slice. Adding and access are fast, while
deleting requires renumbering the index map above the deleted item.
*/
package ordmap

import (
	"slices"
)

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map that combines the order of a slice
// and the fast key lookup of a map. The zero value is ready to use.
type Map[K comparable, V any] struct {

	// Order is an ordered list of values and associated keys, in the order added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		Map: make(map[K]int),
	}
}

// Init initializes the map if it isn't already.
func (om *Map[K, V]) Init() {
	if om.Map == nil {
		om.Map = make(map[K]int, len(om.Order))
		for i, kv := range om.Order {
			om.Map[kv.Key] = i
		}
	}
}

// Add adds a new value for given key.
// If key already exists in map, it replaces the item at that existing index,
// otherwise it is added to the end.
func (om *Map[K, V]) Add(key K, val V) {
	om.Init()
	if idx, has := om.Map[key]; has {
		om.Order[idx].Value = val
		return
	}
	om.Map[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// ValueByKey returns the value corresponding to the given key,
// with a zero value returned for a missing key. See [Map.ValueByKeyTry]
// for one that returns a bool for missing keys.
func (om *Map[K, V]) ValueByKey(key K) V {
	v, _ := om.ValueByKeyTry(key)
	return v
}

// ValueByKeyTry returns the value corresponding to the given key,
// with false returned for a missing key.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	om.Init()
	idx, ok := om.Map[key]
	if ok {
		return om.Order[idx].Value, ok
	}
	var zv V
	return zv, false
}

// DeleteByKey deletes the item with the given key, returning false if
// it does not find it.
func (om *Map[K, V]) DeleteByKey(key K) bool {
	om.Init()
	idx, ok := om.Map[key]
	if !ok {
		return false
	}
	delete(om.Map, key)
	om.Order = slices.Delete(om.Order, idx, idx+1)
	for o := idx; o < len(om.Order); o++ {
		om.Map[om.Order[o].Key] = o
	}
	return true
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	keys := make([]K, len(om.Order))
	for i, kv := range om.Order {
		keys[i] = kv.Key
	}
	return keys
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	return len(om.Order)
}

// Clone returns an independent copy of the map, with the same order.
// Values are copied shallowly.
func (om *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{Order: slices.Clone(om.Order)}
	c.Init()
	return c
}
