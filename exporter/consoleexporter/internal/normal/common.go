// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package normal // import "go.opentelemetry.io/jsonline/exporter/consoleexporter/internal/normal"

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.opentelemetry.io/otel/trace"

	"go.opentelemetry.io/jsonline/pdata/pcommon"
)

// Options controls how records are rendered.
type Options struct {
	// TimestampFormat is a Go time layout. Empty suppresses the timestamp.
	TimestampFormat string
	// UseUTC renders timestamps in UTC instead of local time.
	UseUTC bool
	// Color enables ANSI colors regardless of the terminal detection done by
	// github.com/fatih/color.
	Color bool
	// IncludeAttributes appends the record attributes as key=value pairs.
	IncludeAttributes bool
}

var messageEscaper = strings.NewReplacer("\r", `\r`, "\n", `\n`)

type palette struct {
	markers map[string]*color.Color
	err     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		markers: map[string]*color.Color{
			markerTrace:   color.New(color.FgHiBlack),
			markerDebug:   color.New(color.FgHiBlack),
			markerInfo:    color.New(color.FgGreen),
			markerWarn:    color.New(color.FgYellow),
			markerError:   color.New(color.FgRed),
			markerFatal:   color.New(color.FgWhite, color.BgRed),
			markerUnknown: color.New(color.Reset),
			markerSpan:    color.New(color.FgCyan),
		},
		err: color.New(color.FgRed, color.Bold),
	}
	for _, c := range p.markers {
		setColor(c, enabled)
	}
	setColor(p.err, enabled)
	return p
}

func setColor(c *color.Color, enabled bool) {
	if enabled {
		c.EnableColor()
		return
	}
	c.DisableColor()
}

func (p palette) marker(m string) string {
	if c, ok := p.markers[m]; ok {
		return c.Sprint(m)
	}
	return m
}

func (p palette) errorMarker() string {
	return p.err.Sprint("error")
}

// writeAttributes returns a slice of strings in the form "attrKey=attrValue"
func writeAttributes(attributes pcommon.Map) (attributeStrings []string) {
	for k, v := range attributes.All() {
		attribute := fmt.Sprintf("%s=%s", messageEscaper.Replace(k), messageEscaper.Replace(v.AsString()))
		attributeStrings = append(attributeStrings, attribute)
	}
	return attributeStrings
}

// writeAttributesString returns a string in the form " attrKey=attrValue attr2=value2"
func writeAttributesString(attributesMap pcommon.Map) (attributesString string) {
	attributes := writeAttributes(attributesMap)
	if len(attributes) > 0 {
		attributesString = " " + strings.Join(attributes, " ")
	}
	return attributesString
}

// writeCorrelation returns " traceid-spanid", or nothing when the trace id is absent.
func writeCorrelation(traceID trace.TraceID, spanID trace.SpanID) string {
	if !traceID.IsValid() {
		return ""
	}
	return " " + traceID.String() + "-" + spanID.String()
}

func (o Options) writeTimestamp(sb *strings.Builder, ts time.Time) {
	if o.TimestampFormat == "" {
		return
	}
	if o.UseUTC {
		ts = ts.UTC()
	} else {
		ts = ts.Local()
	}
	sb.WriteString(ts.Format(o.TimestampFormat))
	sb.WriteByte(' ')
}
