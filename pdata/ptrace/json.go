// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package ptrace // import "go.opentelemetry.io/jsonline/pdata/ptrace"

import (
	"go.opentelemetry.io/jsonline/pdata/internal/json"
	"go.opentelemetry.io/jsonline/pdata/pcommon"
)

// Marshaler marshals a batch of spans into a single document.
type Marshaler interface {
	MarshalTraces(td Traces) ([]byte, error)
}

var _ Marshaler = (*JSONMarshaler)(nil)

// JSONMarshaler marshals Traces to JSON bytes using the OTLP/JSON format.
type JSONMarshaler struct {
	IDEncoding pcommon.IDEncoding
}

// MarshalTraces to the OTLP/JSON format.
func (m *JSONMarshaler) MarshalTraces(td Traces) ([]byte, error) {
	dest := json.BorrowStream()
	defer json.ReturnStream(dest)

	dest.WriteObjectStart()
	dest.WriteObjectField("resourceSpans")
	dest.WriteArrayStart()
	dest.WriteObjectStart()
	dest.WriteResource(td.Resource)
	dest.WriteObjectField("scopeSpans")
	dest.WriteArrayStart()
	for i, ss := range GroupByScope(td.Spans) {
		if i > 0 {
			dest.WriteMore()
		}
		dest.WriteObjectStart()
		dest.WriteScope(ss.Name)
		dest.WriteObjectField("spans")
		dest.WriteArrayStart()
		for j := range ss.Spans {
			if j > 0 {
				dest.WriteMore()
			}
			m.writeSpan(dest, &ss.Spans[j])
		}
		dest.WriteArrayEnd()
		dest.WriteObjectEnd()
	}
	dest.WriteArrayEnd()
	dest.WriteObjectEnd()
	dest.WriteArrayEnd()
	dest.WriteObjectEnd()
	return dest.Bytes()
}

func (m *JSONMarshaler) writeSpan(dest *json.Stream, s *Span) {
	dest.WriteObjectStart()
	dest.WriteIDField("traceId", m.IDEncoding.EncodeTraceID(s.TraceID))
	dest.WriteIDField("spanId", m.IDEncoding.EncodeSpanID(s.SpanID))
	dest.WriteIDField("parentSpanId", m.IDEncoding.EncodeSpanID(s.ParentSpanID))
	if s.TraceFlags != 0 {
		dest.WriteObjectField("flags")
		dest.WriteUint32(uint32(s.TraceFlags))
	}
	dest.WriteObjectField("name")
	dest.WriteString(s.Name)
	if s.Kind != SpanKindUnspecified {
		dest.WriteObjectField("kind")
		dest.WriteInt32(int32(s.Kind))
	}
	dest.WriteObjectField("startTimeUnixNano")
	dest.WriteUint64(uint64(pcommon.NewTimestampFromTime(s.StartTime)))
	dest.WriteObjectField("endTimeUnixNano")
	dest.WriteUint64(uint64(pcommon.NewTimestampFromTime(s.EndTime)))
	dest.WriteAttributes(s.Attributes)
	dest.WriteObjectField("droppedAttributesCount")
	dest.WriteUint32(0)
	dest.WriteObjectField("status")
	dest.WriteObjectStart()
	if s.Status.Message != "" {
		dest.WriteObjectField("message")
		dest.WriteString(s.Status.Message)
	}
	if s.Status.Code != StatusCodeUnset {
		dest.WriteObjectField("code")
		dest.WriteInt32(int32(s.Status.Code))
	}
	dest.WriteObjectEnd()
	dest.WriteObjectEnd()
}
