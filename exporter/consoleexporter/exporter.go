// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package consoleexporter // import "go.opentelemetry.io/jsonline/exporter/consoleexporter"

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"go.opentelemetry.io/jsonline/exporter"
	"go.opentelemetry.io/jsonline/exporter/consoleexporter/internal/normal"
	"go.opentelemetry.io/jsonline/exporter/exporterhelper"
	"go.opentelemetry.io/jsonline/exporter/linesink"
	"go.opentelemetry.io/jsonline/pdata/plog"
	"go.opentelemetry.io/jsonline/pdata/ptrace"
)

var errNilConfig = errors.New("nil config")

// Exporter writes one colored line per record or span to the shared sink.
type Exporter struct {
	*exporterhelper.BaseExporter

	sink            *linesink.Sink
	logsMarshaler   *normal.LogsMarshaler
	tracesMarshaler *normal.TracesMarshaler
}

var (
	_ exporter.Logs   = (*Exporter)(nil)
	_ exporter.Traces = (*Exporter)(nil)
)

// New creates a console exporter writing to set.Sink.
func New(cfg *Config, set exporter.Settings) (*Exporter, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := normal.Options{
		TimestampFormat:   cfg.TimestampFormat,
		UseUTC:            cfg.UseUTC,
		Color:             !cfg.DisableColor && !color.NoColor,
		IncludeAttributes: cfg.IncludeAttributes,
	}
	e := &Exporter{
		sink:            set.Sink,
		logsMarshaler:   normal.NewNormalLogsMarshaler(opts),
		tracesMarshaler: normal.NewNormalTracesMarshaler(opts),
	}
	be, err := exporterhelper.NewBaseExporter(Type, set, e.pushLogs, e.pushTraces)
	if err != nil {
		return nil, err
	}
	e.BaseExporter = be
	return e, nil
}

func (e *Exporter) pushLogs(_ context.Context, ld plog.Logs) error {
	return e.writeLines(e.logsMarshaler.LogLines(ld))
}

func (e *Exporter) pushTraces(_ context.Context, td ptrace.Traces) error {
	return e.writeLines(e.tracesMarshaler.SpanLines(td))
}

// writeLines writes the already rendered lines one by one, stopping at the
// first failure.
func (e *Exporter) writeLines(lines []string) error {
	for _, line := range lines {
		if err := e.sink.WriteLine([]byte(line)); err != nil {
			return fmt.Errorf("failed to write console line: %w", err)
		}
	}
	return nil
}
