// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package json // import "go.opentelemetry.io/jsonline/pdata/internal/json"

import (
	"go.opentelemetry.io/jsonline/pdata/pcommon"
)

// WriteAnyValue writes v as an OTLP AnyValue object with exactly one field set.
// Variants that OTLP has no scalar for (null, uint64 overflow, decimal and
// textual fallbacks) are written as stringValue.
func (ots *Stream) WriteAnyValue(v pcommon.Value) {
	ots.WriteObjectStart()
	switch v.Type() {
	case pcommon.ValueTypeBool:
		ots.WriteObjectField("boolValue")
		ots.WriteBool(v.Bool())
	case pcommon.ValueTypeInt:
		ots.WriteObjectField("intValue")
		ots.WriteInt64(v.Int())
	case pcommon.ValueTypeDouble:
		ots.WriteObjectField("doubleValue")
		ots.WriteFloat64(v.Double())
	default:
		ots.WriteObjectField("stringValue")
		ots.WriteString(v.Str())
	}
	ots.WriteObjectEnd()
}

// WriteAttributes writes the "attributes" field: every entry of attrs in
// order followed by extra. The field is written even when empty.
func (ots *Stream) WriteAttributes(attrs pcommon.Map, extra ...pcommon.KeyValue) {
	ots.WriteObjectField("attributes")
	ots.WriteArrayStart()
	first := true
	for k, v := range attrs.All() {
		if !first {
			ots.WriteMore()
		}
		first = false
		ots.writeKeyValue(k, v)
	}
	for _, kv := range extra {
		if !first {
			ots.WriteMore()
		}
		first = false
		ots.writeKeyValue(kv.Key, kv.Value)
	}
	ots.WriteArrayEnd()
}

func (ots *Stream) writeKeyValue(key string, v pcommon.Value) {
	ots.WriteObjectStart()
	ots.WriteObjectField("key")
	ots.WriteString(key)
	ots.WriteObjectField("value")
	ots.WriteAnyValue(v)
	ots.WriteObjectEnd()
}

// WriteResource writes the "resource" field.
func (ots *Stream) WriteResource(res pcommon.Resource) {
	ots.WriteObjectField("resource")
	ots.WriteObjectStart()
	ots.WriteAttributes(res.Attributes())
	ots.WriteObjectEnd()
}

// WriteScope writes the "scope" field. The name is omitted when empty.
func (ots *Stream) WriteScope(name string) {
	ots.WriteObjectField("scope")
	ots.WriteObjectStart()
	if name != "" {
		ots.WriteObjectField("name")
		ots.WriteString(name)
	}
	ots.WriteObjectEnd()
}

// WriteIDField writes field with the encoded identifier, or nothing when the
// identifier is absent.
func (ots *Stream) WriteIDField(field, encoded string) {
	if encoded == "" {
		return
	}
	ots.WriteObjectField(field)
	ots.WriteString(encoded)
}
