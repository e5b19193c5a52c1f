// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package exporterhelper provides the behavior shared by every exporter:
// settings validation, cancellation, logging and obsreport accounting around
// a push function that encodes and writes a batch.
package exporterhelper // import "go.opentelemetry.io/jsonline/exporter/exporterhelper"

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"go.opentelemetry.io/jsonline/exporter"
	"go.opentelemetry.io/jsonline/exporter/linesink"
	"go.opentelemetry.io/jsonline/obsreport"
	"go.opentelemetry.io/jsonline/pdata/pcommon"
	"go.opentelemetry.io/jsonline/pdata/plog"
	"go.opentelemetry.io/jsonline/pdata/ptrace"
)

var (
	errNilSink           = errors.New("nil sink")
	errNilPushLogsData   = errors.New("nil PushLogs")
	errNilPushTracesData = errors.New("nil PushTraces")
)

// PushLogsFunc encodes and writes a non-empty batch of logs.
type PushLogsFunc func(ctx context.Context, ld plog.Logs) error

// PushTracesFunc encodes and writes a non-empty batch of spans.
type PushTracesFunc func(ctx context.Context, td ptrace.Traces) error

// BaseExporter implements exporter.Logs and exporter.Traces on top of the
// push functions of a concrete exporter.
type BaseExporter struct {
	logger     *zap.Logger
	sink       *linesink.Sink
	resource   pcommon.Resource
	obsrep     *obsreport.Exporter
	pushLogs   PushLogsFunc
	pushTraces PushTracesFunc
}

var (
	_ exporter.Logs   = (*BaseExporter)(nil)
	_ exporter.Traces = (*BaseExporter)(nil)
)

// NewBaseExporter validates set and wraps the push functions. typ names the
// exporter when set.ID is empty.
func NewBaseExporter(typ string, set exporter.Settings, pushLogs PushLogsFunc, pushTraces PushTracesFunc) (*BaseExporter, error) {
	if set.Sink == nil {
		return nil, errNilSink
	}
	if pushLogs == nil {
		return nil, errNilPushLogsData
	}
	if pushTraces == nil {
		return nil, errNilPushTracesData
	}
	id := set.ID
	if id == "" {
		id = typ
	}
	logger := set.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	obsrep, err := obsreport.NewExporter(obsreport.ExporterSettings{ExporterID: id, Registerer: set.Registerer})
	if err != nil {
		return nil, err
	}
	return &BaseExporter{
		logger:     logger.With(zap.String("exporter", id)),
		sink:       set.Sink,
		resource:   set.Resource,
		obsrep:     obsrep,
		pushLogs:   pushLogs,
		pushTraces: pushTraces,
	}, nil
}

// ExportLogs writes records as one batch. An empty batch writes nothing.
func (be *BaseExporter) ExportLogs(ctx context.Context, records []plog.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	ld := plog.NewLogs(be.resource, records)
	be.logger.Debug("Logs", zap.Int("log records", ld.LogRecordCount()))

	err := be.pushLogs(ctx, ld)
	be.obsrep.EndLogsExportOp(ld.LogRecordCount(), err)
	if err != nil {
		be.logger.Error("Exporting failed. Dropping data.", zap.Error(err), zap.Int("dropped_items", ld.LogRecordCount()))
	}
	return err
}

// ExportSpans writes spans as one batch. An empty batch writes nothing.
func (be *BaseExporter) ExportSpans(ctx context.Context, spans []ptrace.Span) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(spans) == 0 {
		return nil
	}
	td := ptrace.NewTraces(be.resource, spans)
	be.logger.Debug("Traces", zap.Int("spans", td.SpanCount()))

	err := be.pushTraces(ctx, td)
	be.obsrep.EndTracesExportOp(td.SpanCount(), err)
	if err != nil {
		be.logger.Error("Exporting failed. Dropping data.", zap.Error(err), zap.Int("dropped_items", td.SpanCount()))
	}
	return err
}

// Shutdown flushes the shared sink. The sink stays open for the other
// exporters holding it.
func (be *BaseExporter) Shutdown(context.Context) error {
	return be.sink.Sync()
}

// Sink returns the line writer the exporter writes to.
func (be *BaseExporter) Sink() *linesink.Sink {
	return be.sink
}
