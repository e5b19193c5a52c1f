// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package pcommon // import "go.opentelemetry.io/jsonline/pdata/pcommon"

import (
	"iter"
)

// KeyValue is a single attribute.
type KeyValue struct {
	Key   string
	Value Value
}

// NewKeyValue coerces v and pairs it with key.
func NewKeyValue(key string, v any) KeyValue {
	return KeyValue{Key: key, Value: NewValueFromAny(v)}
}

// Map is an ordered list of attributes. Insertion order is preserved and
// duplicate keys are kept in place; nothing is ever sorted or deduplicated.
//
// The zero Map is empty and ready to use.
type Map struct {
	kvs []KeyValue
}

// NewMap creates a Map holding a copy of kvs.
func NewMap(kvs ...KeyValue) Map {
	if len(kvs) == 0 {
		return Map{}
	}
	return Map{kvs: append(make([]KeyValue, 0, len(kvs)), kvs...)}
}

// NewMapFromPairs builds a Map from alternating keys and raw values, coercing
// every value. A trailing key without a value is stored as null.
func NewMapFromPairs(pairs ...any) Map {
	m := Map{kvs: make([]KeyValue, 0, (len(pairs)+1)/2)}
	for i := 0; i < len(pairs); i += 2 {
		key, _ := pairs[i].(string)
		var v any
		if i+1 < len(pairs) {
			v = pairs[i+1]
		}
		m.Put(key, v)
	}
	return m
}

// Len returns the number of attributes, duplicates included.
func (m Map) Len() int {
	return len(m.kvs)
}

// At returns the attribute at position i.
func (m Map) At(i int) KeyValue {
	return m.kvs[i]
}

// Get returns the first value stored under key.
func (m Map) Get(key string) (Value, bool) {
	for _, kv := range m.kvs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return Value{}, false
}

// All returns an iterator over key-value pairs in insertion order.
func (m Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, kv := range m.kvs {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Put appends key with the coerced value of v.
func (m *Map) Put(key string, v any) {
	m.kvs = append(m.kvs, NewKeyValue(key, v))
}
