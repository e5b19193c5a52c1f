// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package pcommon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapPreservesOrderAndDuplicates(t *testing.T) {
	var m Map
	m.Put("B", "1")
	m.Put("A", 2)
	m.Put("B", "3")

	var keys []string
	var values []string
	for k, v := range m.All() {
		keys = append(keys, k)
		values = append(values, v.AsString())
	}
	assert.Equal(t, []string{"B", "A", "B"}, keys)
	assert.Equal(t, []string{"1", "2", "3"}, values)
	assert.Equal(t, 3, m.Len())

	first, ok := m.Get("B")
	assert.True(t, ok)
	assert.Equal(t, "1", first.Str())
	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestNewMapFromPairs(t *testing.T) {
	m := NewMapFromPairs("a", 1, "b", true, "c")
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, ValueTypeInt, m.At(0).Value.Type())
	assert.Equal(t, ValueTypeBool, m.At(1).Value.Type())
	assert.Equal(t, "c", m.At(2).Key)
	assert.Equal(t, ValueTypeEmpty, m.At(2).Value.Type())
}

func TestNewMapCopies(t *testing.T) {
	kvs := []KeyValue{NewKeyValue("k", "v")}
	m := NewMap(kvs...)
	kvs[0].Key = "changed"
	assert.Equal(t, "k", m.At(0).Key)
}

func TestMapIteratorStops(t *testing.T) {
	m := NewMapFromPairs("a", 1, "b", 2, "c", 3)
	n := 0
	for range m.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
