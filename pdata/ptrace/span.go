// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package ptrace // import "go.opentelemetry.io/jsonline/pdata/ptrace"

import (
	"time"

	"go.opentelemetry.io/otel/trace"

	"go.opentelemetry.io/jsonline/pdata/pcommon"
)

// StatusCode mirrors the values of the OTLP status code.
type StatusCode int32

const (
	StatusCodeUnset StatusCode = iota
	StatusCodeOk
	StatusCodeError
)

// String returns the string representation of the StatusCode.
func (sc StatusCode) String() string {
	switch sc {
	case StatusCodeUnset:
		return "Unset"
	case StatusCodeOk:
		return "Ok"
	case StatusCodeError:
		return "Error"
	}
	return ""
}

// Status is the outcome of the operation a span describes.
type Status struct {
	Code    StatusCode
	Message string
}

// Span is a single completed span handed to an exporter.
type Span struct {
	Name         string
	Kind         SpanKind
	TraceID      trace.TraceID
	SpanID       trace.SpanID
	ParentSpanID trace.SpanID
	TraceFlags   trace.TraceFlags
	StartTime    time.Time
	EndTime      time.Time
	Status       Status
	Attributes   pcommon.Map
	// ScopeName names the instrumentation that produced the span.
	ScopeName string
}

// Duration returns EndTime - StartTime, or 0 when the span ends before it starts.
func (s Span) Duration() time.Duration {
	d := s.EndTime.Sub(s.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// Traces is a batch of spans emitted by a single Resource.
type Traces struct {
	Resource pcommon.Resource
	Spans    []Span
}

// NewTraces pairs a batch of spans with the Resource that emitted them.
func NewTraces(res pcommon.Resource, spans []Span) Traces {
	return Traces{Resource: res, Spans: spans}
}

// SpanCount returns the number of spans in the batch.
func (td Traces) SpanCount() int {
	return len(td.Spans)
}

// ScopeSpans is the group of spans sharing a ScopeName.
type ScopeSpans struct {
	Name  string
	Spans []Span
}

// GroupByScope partitions spans by ScopeName in first-seen order, keeping
// batch order inside a group.
func GroupByScope(spans []Span) []ScopeSpans {
	var groups []ScopeSpans
	index := make(map[string]int)
	for _, s := range spans {
		i, ok := index[s.ScopeName]
		if !ok {
			i = len(groups)
			index[s.ScopeName] = i
			groups = append(groups, ScopeSpans{Name: s.ScopeName})
		}
		groups[i].Spans = append(groups[i].Spans, s)
	}
	return groups
}
