// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package linesink provides the synchronized line writer shared by every
// exporter that targets the same output stream.
package linesink // import "go.opentelemetry.io/jsonline/exporter/linesink"
