// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package normal // import "go.opentelemetry.io/jsonline/exporter/consoleexporter/internal/normal"

import (
	"strconv"
	"strings"

	"go.opentelemetry.io/jsonline/pdata/ptrace"
)

// TracesMarshaler renders spans as one line of text each.
type TracesMarshaler struct {
	opts    Options
	palette palette
}

// NewNormalTracesMarshaler returns a TracesMarshaler writing one line of text per span.
func NewNormalTracesMarshaler(opts Options) *TracesMarshaler {
	return &TracesMarshaler{opts: opts, palette: newPalette(opts.Color)}
}

// SpanLines renders each span of td, in batch order, without trailing newlines.
func (m *TracesMarshaler) SpanLines(td ptrace.Traces) []string {
	lines := make([]string, 0, len(td.Spans))
	for i := range td.Spans {
		lines = append(lines, m.spanLine(&td.Spans[i]))
	}
	return lines
}

func (m *TracesMarshaler) spanLine(span *ptrace.Span) string {
	var sb strings.Builder
	m.opts.writeTimestamp(&sb, span.StartTime)
	sb.WriteString(m.palette.marker(markerSpan))
	sb.WriteByte(' ')
	sb.WriteString(messageEscaper.Replace(span.Name))
	sb.WriteByte(' ')
	sb.WriteString(span.TraceID.String())
	sb.WriteByte('-')
	sb.WriteString(span.SpanID.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatInt(span.Duration().Milliseconds(), 10))
	sb.WriteString("ms")
	if m.opts.IncludeAttributes {
		sb.WriteString(writeAttributesString(span.Attributes))
	}
	if span.Status.Code == ptrace.StatusCodeError {
		sb.WriteByte(' ')
		sb.WriteString(m.palette.errorMarker())
	}
	return sb.String()
}
