// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package exporter contains the interfaces implemented by the log and span
// exporters and the settings they are created with.
package exporter // import "go.opentelemetry.io/jsonline/exporter"

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"go.opentelemetry.io/jsonline/exporter/linesink"
	"go.opentelemetry.io/jsonline/pdata/pcommon"
	"go.opentelemetry.io/jsonline/pdata/plog"
	"go.opentelemetry.io/jsonline/pdata/ptrace"
)

// Logs exports batches of log records.
type Logs interface {
	ExportLogs(ctx context.Context, records []plog.Record) error
	Shutdown(ctx context.Context) error
}

// Traces exports batches of completed spans.
type Traces interface {
	ExportSpans(ctx context.Context, spans []ptrace.Span) error
	Shutdown(ctx context.Context) error
}

// Settings is passed to every exporter constructor.
type Settings struct {
	// ID identifies the exporter instance in logs and metrics. Defaults to
	// the exporter type when empty.
	ID string

	// Logger receives the exporter's own diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger

	// Sink is the shared line writer the exporter writes to. Required.
	Sink *linesink.Sink

	// Resource is attached to every exported batch.
	Resource pcommon.Resource

	// Registerer receives the exporter counters. Nil keeps them unregistered.
	Registerer prometheus.Registerer
}
