// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package consoleexporter // import "go.opentelemetry.io/jsonline/exporter/consoleexporter"

import (
	"errors"
	"strings"
)

// Config defines configuration for the console exporter.
type Config struct {
	// TimestampFormat is the Go time layout of the line prefix. Empty
	// suppresses the timestamp.
	TimestampFormat string `mapstructure:"timestamp_format"`

	// UseUTC renders timestamps in UTC instead of local time.
	UseUTC bool `mapstructure:"use_utc"`

	// DisableColor turns off ANSI colors. Colors are also off when the
	// process output is not a terminal or NO_COLOR is set.
	DisableColor bool `mapstructure:"disable_color"`

	// IncludeAttributes appends record attributes as key=value pairs.
	IncludeAttributes bool `mapstructure:"include_attributes"`

	// prevent unkeyed literal initialization
	_ struct{}
}

// Validate checks if the exporter configuration is valid
func (cfg *Config) Validate() error {
	if strings.ContainsAny(cfg.TimestampFormat, "\r\n") {
		return errors.New("timestamp_format must not contain line breaks")
	}
	return nil
}
