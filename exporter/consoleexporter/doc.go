// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package consoleexporter exports log records and spans as colored,
// human-readable lines.
package consoleexporter // import "go.opentelemetry.io/jsonline/exporter/consoleexporter"
