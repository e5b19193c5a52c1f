// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package jsonlineexporter // import "go.opentelemetry.io/jsonline/exporter/jsonlineexporter"

import (
	"go.opentelemetry.io/jsonline/pdata/pcommon"
)

// Type is the value of the "type" key in configuration and the default
// exporter ID.
const Type = "jsonline"

// NewDefaultConfig returns the configuration used when none is given.
func NewDefaultConfig() *Config {
	return createDefaultConfig()
}

func createDefaultConfig() *Config {
	return &Config{
		IDEncoding: pcommon.IDEncodingHex,
	}
}
