// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package plog // import "go.opentelemetry.io/jsonline/pdata/plog"

import (
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"go.opentelemetry.io/jsonline/pdata/internal/json"
	"go.opentelemetry.io/jsonline/pdata/pcommon"
)

// EventIDKey is the attribute carrying a nonzero EventID.ID.
const EventIDKey = "event.id"

// Marshaler marshals a batch of logs into a single document.
type Marshaler interface {
	MarshalLogs(ld Logs) ([]byte, error)
}

var _ Marshaler = (*JSONMarshaler)(nil)

// JSONMarshaler marshals Logs to JSON bytes using the OTLP/JSON format. The
// output is a single line: it never contains a newline.
type JSONMarshaler struct {
	IDEncoding pcommon.IDEncoding
}

// MarshalLogs to the OTLP/JSON format.
func (m *JSONMarshaler) MarshalLogs(ld Logs) ([]byte, error) {
	dest := json.BorrowStream()
	defer json.ReturnStream(dest)

	dest.WriteObjectStart()
	dest.WriteObjectField("resourceLogs")
	dest.WriteArrayStart()
	dest.WriteObjectStart()
	dest.WriteResource(ld.Resource)
	dest.WriteObjectField("scopeLogs")
	dest.WriteArrayStart()
	for i, sl := range GroupByScope(ld.Records) {
		if i > 0 {
			dest.WriteMore()
		}
		m.writeScopeLogs(dest, sl)
	}
	dest.WriteArrayEnd()
	dest.WriteObjectEnd()
	dest.WriteArrayEnd()
	dest.WriteObjectEnd()
	return dest.Bytes()
}

func (m *JSONMarshaler) writeScopeLogs(dest *json.Stream, sl ScopeLogs) {
	dest.WriteObjectStart()
	dest.WriteScope(sl.Name)
	dest.WriteObjectField("logRecords")
	dest.WriteArrayStart()
	for i := range sl.Records {
		if i > 0 {
			dest.WriteMore()
		}
		m.writeLogRecord(dest, &sl.Records[i])
	}
	dest.WriteArrayEnd()
	dest.WriteObjectEnd()
}

func (m *JSONMarshaler) writeLogRecord(dest *json.Stream, lr *Record) {
	dest.WriteObjectStart()
	dest.WriteObjectField("timeUnixNano")
	dest.WriteUint64(uint64(pcommon.NewTimestampFromTime(lr.Timestamp)))
	dest.WriteObjectField("observedTimeUnixNano")
	dest.WriteUint64(uint64(pcommon.NewTimestampFromTime(lr.ObservedTime())))
	if lr.Severity.IsSet() {
		dest.WriteObjectField("severityNumber")
		dest.WriteInt32(int32(lr.Severity))
		if text := lr.Severity.Text(); text != "" {
			dest.WriteObjectField("severityText")
			dest.WriteString(text)
		}
	}
	dest.WriteObjectField("body")
	dest.WriteAnyValue(pcommon.NewValueStr(lr.WireBody()))
	if lr.EventID.Name != "" {
		dest.WriteObjectField("eventName")
		dest.WriteString(lr.EventID.Name)
	}
	dest.WriteAttributes(lr.Attributes, syntheticAttributes(lr)...)
	dest.WriteObjectField("droppedAttributesCount")
	dest.WriteUint32(0)
	dest.WriteIDField("traceId", m.IDEncoding.EncodeTraceID(lr.TraceID))
	dest.WriteIDField("spanId", m.IDEncoding.EncodeSpanID(lr.SpanID))
	if lr.TraceFlags != 0 {
		dest.WriteObjectField("flags")
		dest.WriteUint32(uint32(lr.TraceFlags))
	}
	dest.WriteObjectEnd()
}

// syntheticAttributes returns the attributes appended after the user
// attributes: the event id, then the exception fields that are set.
func syntheticAttributes(lr *Record) []pcommon.KeyValue {
	var kvs []pcommon.KeyValue
	if lr.EventID.ID != 0 {
		kvs = append(kvs, pcommon.KeyValue{Key: EventIDKey, Value: pcommon.NewValueInt(lr.EventID.ID)})
	}
	if ex := lr.Exception; ex != nil {
		if ex.Type != "" {
			kvs = append(kvs, pcommon.KeyValue{Key: string(semconv.ExceptionTypeKey), Value: pcommon.NewValueStr(ex.Type)})
		}
		if ex.Message != "" {
			kvs = append(kvs, pcommon.KeyValue{Key: string(semconv.ExceptionMessageKey), Value: pcommon.NewValueStr(ex.Message)})
		}
		if ex.StackTrace != "" {
			kvs = append(kvs, pcommon.KeyValue{Key: string(semconv.ExceptionStacktraceKey), Value: pcommon.NewValueStr(ex.StackTrace)})
		}
	}
	return kvs
}
