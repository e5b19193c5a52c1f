// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package pcommon // import "go.opentelemetry.io/jsonline/pdata/pcommon"

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

var errInvalidIDLength = errors.New("invalid length")

// IDEncoding selects how trace and span identifiers are written.
type IDEncoding int32

const (
	// IDEncodingHex writes lowercase hex: 32 characters for a trace id, 16 for a span id.
	// This is the OTLP/JSON file format read by collectors.
	IDEncodingHex IDEncoding = iota
	// IDEncodingBase64 writes the raw bytes in standard base64, the protobuf
	// JSON mapping for bytes fields.
	IDEncodingBase64
)

// String returns the configuration spelling of the encoding.
func (e IDEncoding) String() string {
	switch e {
	case IDEncodingHex:
		return "hex"
	case IDEncodingBase64:
		return "base64"
	}
	return ""
}

// MarshalText marshals IDEncoding to text.
func (e IDEncoding) MarshalText() ([]byte, error) {
	s := e.String()
	if s == "" {
		return nil, fmt.Errorf("unknown id encoding %d", int32(e))
	}
	return []byte(s), nil
}

// UnmarshalText unmarshalls text to an IDEncoding.
func (e *IDEncoding) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "hex", "":
		*e = IDEncodingHex
	case "base64", "bytes":
		*e = IDEncodingBase64
	default:
		return fmt.Errorf("unknown id encoding %q, expected \"hex\" or \"base64\"", string(text))
	}
	return nil
}

// EncodeTraceID returns the fixed-width encoding of id, or "" when id is the
// all-zero (absent) identifier.
func (e IDEncoding) EncodeTraceID(id trace.TraceID) string {
	if !id.IsValid() {
		return ""
	}
	return e.encode(id[:])
}

// EncodeSpanID returns the fixed-width encoding of id, or "" when id is the
// all-zero (absent) identifier.
func (e IDEncoding) EncodeSpanID(id trace.SpanID) string {
	if !id.IsValid() {
		return ""
	}
	return e.encode(id[:])
}

func (e IDEncoding) encode(b []byte) string {
	if e == IDEncodingBase64 {
		return base64.StdEncoding.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}

// ParseTraceID decodes a 32 character hex trace id. The empty string yields
// the absent (zero) id.
func ParseTraceID(s string) (trace.TraceID, error) {
	var id trace.TraceID
	if s == "" {
		return id, nil
	}
	if err := decodeHexID(id[:], s); err != nil {
		return id, fmt.Errorf("invalid trace id %q: %w", s, err)
	}
	return id, nil
}

// ParseSpanID decodes a 16 character hex span id. The empty string yields
// the absent (zero) id.
func ParseSpanID(s string) (trace.SpanID, error) {
	var id trace.SpanID
	if s == "" {
		return id, nil
	}
	if err := decodeHexID(id[:], s); err != nil {
		return id, fmt.Errorf("invalid span id %q: %w", s, err)
	}
	return id, nil
}

func decodeHexID(dst []byte, s string) error {
	if len(s) != hex.EncodedLen(len(dst)) {
		return errInvalidIDLength
	}
	_, err := hex.Decode(dst, []byte(s))
	return err
}
