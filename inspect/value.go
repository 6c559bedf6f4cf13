// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package inspect

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Value is a node in a nested structure: a leaf, an ordered sequence, or a
// string-keyed mapping. The set of implementations is closed.
type Value interface {
	isValue()
}

// Leaf is a terminal value: a tensor, a descriptor, or any opaque Go value.
type Leaf struct {
	X any
}

func (Leaf) isValue() {}

// Sequence is an ordered list of values.
type Sequence []Value

func (Sequence) isValue() {}

// Mapping is a string-keyed collection of values that preserves insertion
// order, so an introspection report mirrors the order a structure was built
// in.
type Mapping struct {
	om *orderedmap.OrderedMap[string, Value]
}

func (*Mapping) isValue() {}

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{om: orderedmap.New[string, Value]()}
}

// Set stores v under key, appending the key if it is new.
// Returns the mapping for chaining.
func (m *Mapping) Set(key string, v Value) *Mapping {
	m.om.Set(key, v)
	return m
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	return m.om.Get(key)
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return m.om.Len()
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	keys := make([]string, 0, m.om.Len())
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Range calls fn for every entry in insertion order until fn returns false.
func (m *Mapping) Range(fn func(key string, v Value) bool) {
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Seq builds a Sequence from values.
func Seq(values ...Value) Sequence {
	return Sequence(values)
}

// Of wraps an arbitrary Go value as a Leaf.
func Of(x any) Leaf {
	return Leaf{X: x}
}
