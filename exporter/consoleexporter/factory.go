// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package consoleexporter // import "go.opentelemetry.io/jsonline/exporter/consoleexporter"

// Type is the value of the "type" key in configuration and the default
// exporter ID.
const Type = "console"

const defaultTimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// NewDefaultConfig returns the configuration used when none is given.
func NewDefaultConfig() *Config {
	return createDefaultConfig()
}

func createDefaultConfig() *Config {
	return &Config{
		TimestampFormat: defaultTimestampFormat,
	}
}
