// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package jsonlineexporter exports log records and spans as OTLP/JSON, one
// self-contained document per line.
package jsonlineexporter // import "go.opentelemetry.io/jsonline/exporter/jsonlineexporter"
