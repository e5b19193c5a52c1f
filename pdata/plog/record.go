// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package plog // import "go.opentelemetry.io/jsonline/pdata/plog"

import (
	"time"

	"go.opentelemetry.io/otel/trace"

	"go.opentelemetry.io/jsonline/pdata/pcommon"
)

// EventID identifies the kind of event a record represents. Either part may
// be set on its own.
type EventID struct {
	ID   int64
	Name string
}

// Exception is an error attached to a log record.
type Exception struct {
	Type       string
	Message    string
	StackTrace string
}

// Record is a single log record handed to an exporter. Exporters treat it as
// read-only for the duration of an export call.
type Record struct {
	Timestamp time.Time
	// ObservedTimestamp defaults to Timestamp when zero.
	ObservedTimestamp time.Time
	Severity          Severity

	// Body is the raw message or message template.
	Body string
	// FormattedMessage is the message with every template parameter substituted.
	FormattedMessage string
	// State is a generic textual rendering of the logger state, used when no
	// message is available.
	State string

	Attributes pcommon.Map
	EventID    EventID

	TraceID    trace.TraceID
	SpanID     trace.SpanID
	TraceFlags trace.TraceFlags

	// CategoryName names the component that produced the record and selects
	// the scope it is grouped under.
	CategoryName string
	Exception    *Exception
}

// WireBody returns the body written to OTLP JSON: the raw body or template,
// then the formatted message, then the state text. Template parameters are
// already carried by the attributes, so the raw text keeps wire fidelity.
func (r Record) WireBody() string {
	switch {
	case r.Body != "":
		return r.Body
	case r.FormattedMessage != "":
		return r.FormattedMessage
	}
	return r.State
}

// DisplayMessage returns the text shown on the console: the formatted message,
// then the raw body, then the state text.
func (r Record) DisplayMessage() string {
	switch {
	case r.FormattedMessage != "":
		return r.FormattedMessage
	case r.Body != "":
		return r.Body
	}
	return r.State
}

// ObservedTime returns ObservedTimestamp, or Timestamp when it is unset.
func (r Record) ObservedTime() time.Time {
	if r.ObservedTimestamp.IsZero() {
		return r.Timestamp
	}
	return r.ObservedTimestamp
}
