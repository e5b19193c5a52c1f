// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package json // import "go.opentelemetry.io/jsonline/pdata/internal/json"

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

// Stream avoids the need to explicitly call the `Stream.WriteMore` method while marshaling objects by
// checking if a field was previously written inside the current object and automatically appending a ","
// if so before writing the next field.
type Stream struct {
	*jsoniter.Stream
	// wmTracker acts like a stack which pushes a new value when an object is started and removes the
	// top when it is ended. The value added for every object tracks if there is any written field
	// already for that object, and if it is then automatically add a "," before any new field.
	wmTracker []bool
}

// BorrowStream returns a Stream that buffers everything in memory. The encoded
// document is available through Bytes once the last value has been written.
func BorrowStream() *Stream {
	return &Stream{
		Stream:    jsoniter.ConfigFastest.BorrowStream(nil),
		wmTracker: make([]bool, 0, 32),
	}
}

func ReturnStream(s *Stream) {
	jsoniter.ConfigFastest.ReturnStream(s.Stream)
}

// Bytes returns a copy of the buffered document, or the first error recorded
// by the underlying stream.
func (ots *Stream) Bytes() ([]byte, error) {
	if ots.Error != nil {
		return nil, ots.Error
	}
	buf := ots.Buffer()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

func (ots *Stream) WriteObjectStart() {
	ots.Stream.WriteObjectStart()
	ots.wmTracker = append(ots.wmTracker, false)
}

func (ots *Stream) WriteObjectField(field string) {
	if ots.wmTracker[len(ots.wmTracker)-1] {
		ots.WriteMore()
	}

	ots.Stream.WriteObjectField(field)
	ots.wmTracker[len(ots.wmTracker)-1] = true
}

func (ots *Stream) WriteObjectEnd() {
	ots.Stream.WriteObjectEnd()
	ots.wmTracker = ots.wmTracker[:len(ots.wmTracker)-1]
}

// WriteString writes val as a JSON string. Invalid UTF-8 sequences are replaced
// with the Unicode replacement character so every emitted line is valid UTF-8.
func (ots *Stream) WriteString(val string) {
	if !utf8.ValidString(val) {
		val = strings.ToValidUTF8(val, string(utf8.RuneError))
	}
	ots.Stream.WriteString(val)
}

// WriteInt64 writes the values as a decimal string. This is per the protobuf encoding rules for int64, fixed64, uint64.
func (ots *Stream) WriteInt64(val int64) {
	ots.WriteString(strconv.FormatInt(val, 10))
}

// WriteUint64 writes the values as a decimal string. This is per the protobuf encoding rules for int64, fixed64, uint64.
func (ots *Stream) WriteUint64(val uint64) {
	ots.WriteString(strconv.FormatUint(val, 10))
}

// WriteFloat64 gracefully handles infinity & NaN values using the protobuf
// JSON spelling.
func (ots *Stream) WriteFloat64(val float64) {
	switch {
	case math.IsNaN(val):
		ots.WriteString("NaN")
		return
	case math.IsInf(val, 1):
		ots.WriteString("Infinity")
		return
	case math.IsInf(val, -1):
		ots.WriteString("-Infinity")
		return
	}

	ots.Stream.WriteFloat64(val)
}
