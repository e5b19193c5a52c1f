// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package normal // import "go.opentelemetry.io/jsonline/exporter/consoleexporter/internal/normal"

import (
	"strings"

	"go.opentelemetry.io/jsonline/pdata/plog"
)

const (
	markerTrace   = "[trce]"
	markerDebug   = "[dbug]"
	markerInfo    = "[info]"
	markerWarn    = "[warn]"
	markerError   = "[fail]"
	markerFatal   = "[crit]"
	markerUnknown = "[????]"
	markerSpan    = "[span]"
)

// severityMarkers holds the marker of each band of four severity numbers.
var severityMarkers = [...]string{markerTrace, markerDebug, markerInfo, markerWarn, markerError, markerFatal}

func severityMarker(s plog.Severity) string {
	if s < plog.SeverityTrace || s > plog.SeverityFatal4 {
		return markerUnknown
	}
	return severityMarkers[(s-1)/4]
}

// LogsMarshaler renders log records as one line of text each.
type LogsMarshaler struct {
	opts    Options
	palette palette
}

// NewNormalLogsMarshaler returns a LogsMarshaler writing one line of text per log record.
func NewNormalLogsMarshaler(opts Options) *LogsMarshaler {
	return &LogsMarshaler{opts: opts, palette: newPalette(opts.Color)}
}

// LogLines renders each record of ld, in batch order, without trailing newlines.
func (m *LogsMarshaler) LogLines(ld plog.Logs) []string {
	lines := make([]string, 0, len(ld.Records))
	for i := range ld.Records {
		lines = append(lines, m.logLine(&ld.Records[i]))
	}
	return lines
}

func (m *LogsMarshaler) logLine(lr *plog.Record) string {
	var sb strings.Builder
	m.opts.writeTimestamp(&sb, lr.Timestamp)
	sb.WriteString(m.palette.marker(severityMarker(lr.Severity)))
	sb.WriteByte(' ')
	if lr.CategoryName != "" {
		sb.WriteString(messageEscaper.Replace(lr.CategoryName))
		sb.WriteString(": ")
	}
	sb.WriteString(messageEscaper.Replace(lr.DisplayMessage()))
	if m.opts.IncludeAttributes {
		sb.WriteString(writeAttributesString(lr.Attributes))
	}
	sb.WriteString(writeCorrelation(lr.TraceID, lr.SpanID))
	if lr.Exception != nil {
		sb.WriteByte(' ')
		sb.WriteString(m.palette.errorMarker())
	}
	return sb.String()
}
