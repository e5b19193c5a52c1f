// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package replay decodes newline-delimited JSON log entries into log records.
//
// Each line holds one object:
//
//	{"time":"2024-03-01T12:30:45.123Z","severity":"info","category":"Auth",
//	 "body":"User {UserName} logged in","message":"User Alice logged in",
//	 "attributes":{"UserName":"Alice"},"eventId":7,"eventName":"Login",
//	 "traceId":"<32 hex>","spanId":"<16 hex>","flags":1,
//	 "exception":{"type":"IOError","message":"...","stacktrace":"..."}}
//
// Every field is optional. Attributes keep the order they appear in.
package replay // import "go.opentelemetry.io/jsonline/cmd/jsonlinelog/internal/replay"

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel/trace"

	"go.opentelemetry.io/jsonline/pdata/pcommon"
	"go.opentelemetry.io/jsonline/pdata/plog"
)

const maxLineSize = 1 << 20

// LineError reports a line that could not be decoded. The Decoder stays
// usable after returning it.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Decoder reads records from an input stream, one per line.
type Decoder struct {
	scanner *bufio.Scanner
	line    int
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Decoder{scanner: scanner}
}

// Decode returns the next record. Blank lines are skipped. It returns io.EOF
// once the input is exhausted and a *LineError for a malformed line.
func (d *Decoder) Decode() (plog.Record, error) {
	for d.scanner.Scan() {
		d.line++
		line := bytes.TrimSpace(d.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		lr, err := DecodeLine(line)
		if err != nil {
			return plog.Record{}, &LineError{Line: d.line, Err: err}
		}
		return lr, nil
	}
	if err := d.scanner.Err(); err != nil {
		return plog.Record{}, err
	}
	return plog.Record{}, io.EOF
}

// DecodeLine decodes a single JSON object into a record.
func DecodeLine(line []byte) (plog.Record, error) {
	iter := jsoniter.ConfigFastest.BorrowIterator(line)
	defer jsoniter.ConfigFastest.ReturnIterator(iter)

	var lr plog.Record
	var fieldErr error
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return lr, errors.New("expected a JSON object")
	}
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
		if err := readField(iter, field, &lr); err != nil {
			fieldErr = fmt.Errorf("field %q: %w", field, err)
			return false
		}
		return true
	})
	if fieldErr != nil {
		return plog.Record{}, fieldErr
	}
	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		return plog.Record{}, iter.Error
	}
	return lr, nil
}

func readField(iter *jsoniter.Iterator, field string, lr *plog.Record) error {
	var err error
	switch field {
	case "time", "timestamp":
		lr.Timestamp, err = time.Parse(time.RFC3339Nano, iter.ReadString())
	case "severity", "level":
		lr.Severity, err = readSeverity(iter)
	case "category", "categoryName":
		lr.CategoryName = iter.ReadString()
	case "body":
		lr.Body = iter.ReadString()
	case "message", "formattedMessage":
		lr.FormattedMessage = iter.ReadString()
	case "state":
		lr.State = iter.ReadString()
	case "attributes":
		lr.Attributes = readAttributes(iter)
	case "eventId":
		lr.EventID.ID = iter.ReadInt64()
	case "eventName":
		lr.EventID.Name = iter.ReadString()
	case "traceId":
		lr.TraceID, err = pcommon.ParseTraceID(iter.ReadString())
	case "spanId":
		lr.SpanID, err = pcommon.ParseSpanID(iter.ReadString())
	case "flags":
		lr.TraceFlags = trace.TraceFlags(iter.ReadUint8())
	case "exception":
		lr.Exception = readException(iter)
	default:
		iter.Skip()
	}
	if err != nil {
		return err
	}
	return iter.Error
}

func readSeverity(iter *jsoniter.Iterator) (plog.Severity, error) {
	switch iter.WhatIsNext() {
	case jsoniter.NumberValue:
		return plog.Severity(iter.ReadInt32()), nil
	case jsoniter.StringValue:
		text := iter.ReadString()
		s, ok := plog.SeverityFromText(text)
		if !ok {
			return plog.SeverityUnset, fmt.Errorf("unknown severity %q", text)
		}
		return s, nil
	case jsoniter.NilValue:
		iter.ReadNil()
		return plog.SeverityUnset, nil
	}
	iter.Skip()
	return plog.SeverityUnset, errors.New("severity must be a number or a level name")
}

func readAttributes(iter *jsoniter.Iterator) pcommon.Map {
	var attrs pcommon.Map
	if iter.WhatIsNext() == jsoniter.NilValue {
		iter.ReadNil()
		return attrs
	}
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		attrs.Put(key, readValue(iter))
		return true
	})
	return attrs
}

// readValue coerces a scalar JSON value. Arrays and objects keep their raw
// JSON text.
func readValue(iter *jsoniter.Iterator) pcommon.Value {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		return pcommon.NewValueStr(iter.ReadString())
	case jsoniter.NumberValue:
		return pcommon.NewValueFromNumber(string(iter.ReadNumber()))
	case jsoniter.BoolValue:
		return pcommon.NewValueBool(iter.ReadBool())
	case jsoniter.NilValue:
		iter.ReadNil()
		return pcommon.NewValueEmpty()
	}
	return pcommon.NewValueStr(string(iter.SkipAndReturnBytes()))
}

func readException(iter *jsoniter.Iterator) *plog.Exception {
	if iter.WhatIsNext() == jsoniter.NilValue {
		iter.ReadNil()
		return nil
	}
	ex := &plog.Exception{}
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
		switch field {
		case "type":
			ex.Type = iter.ReadString()
		case "message":
			ex.Message = iter.ReadString()
		case "stacktrace", "stackTrace":
			ex.StackTrace = iter.ReadString()
		default:
			iter.Skip()
		}
		return true
	})
	return ex
}
