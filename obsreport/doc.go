// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package obsreport provides unified and consistent observability signals for
// the exporters in this module.
//
// Exporters create one Exporter per instance with NewExporter and report the
// outcome of every export call:
//
//   - log record export operations should use EndLogsExportOp
//   - span export operations should use EndTracesExportOp
//
// Each call counts the items that were written to the sink and the items in
// failed attempts to write, labeled with the exporter ID.
//
// Notes:
//
// Data loss is recorded only when the exporter itself fails to write the data;
// the exporters do not retry, so every failed item is reported as a send
// failure.
package obsreport // import "go.opentelemetry.io/jsonline/obsreport"
