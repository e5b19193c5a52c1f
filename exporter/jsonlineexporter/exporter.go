// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package jsonlineexporter // import "go.opentelemetry.io/jsonline/exporter/jsonlineexporter"

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/jsonline/exporter"
	"go.opentelemetry.io/jsonline/exporter/exporterhelper"
	"go.opentelemetry.io/jsonline/exporter/linesink"
	"go.opentelemetry.io/jsonline/pdata/plog"
	"go.opentelemetry.io/jsonline/pdata/ptrace"
)

var errNilConfig = errors.New("nil config")

// Exporter writes each batch as a single OTLP/JSON line to the shared sink.
type Exporter struct {
	*exporterhelper.BaseExporter

	sink            *linesink.Sink
	logsMarshaler   plog.Marshaler
	tracesMarshaler ptrace.Marshaler
}

var (
	_ exporter.Logs   = (*Exporter)(nil)
	_ exporter.Traces = (*Exporter)(nil)
)

// New creates a jsonline exporter writing to set.Sink.
func New(cfg *Config, set exporter.Settings) (*Exporter, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Exporter{
		sink:            set.Sink,
		logsMarshaler:   &plog.JSONMarshaler{IDEncoding: cfg.IDEncoding},
		tracesMarshaler: &ptrace.JSONMarshaler{IDEncoding: cfg.IDEncoding},
	}
	be, err := exporterhelper.NewBaseExporter(Type, set, e.pushLogs, e.pushTraces)
	if err != nil {
		return nil, err
	}
	e.BaseExporter = be
	return e, nil
}

func (e *Exporter) pushLogs(_ context.Context, ld plog.Logs) error {
	buf, err := e.logsMarshaler.MarshalLogs(ld)
	if err != nil {
		return fmt.Errorf("failed to marshal logs: %w", err)
	}
	if err = e.sink.WriteLine(buf); err != nil {
		return fmt.Errorf("failed to write logs: %w", err)
	}
	return nil
}

func (e *Exporter) pushTraces(_ context.Context, td ptrace.Traces) error {
	buf, err := e.tracesMarshaler.MarshalTraces(td)
	if err != nil {
		return fmt.Errorf("failed to marshal traces: %w", err)
	}
	if err = e.sink.WriteLine(buf); err != nil {
		return fmt.Errorf("failed to write traces: %w", err)
	}
	return nil
}
