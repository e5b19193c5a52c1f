// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package jsonlineexporter // import "go.opentelemetry.io/jsonline/exporter/jsonlineexporter"

import (
	"fmt"

	"go.opentelemetry.io/jsonline/pdata/pcommon"
)

// Config defines configuration for the jsonline exporter.
type Config struct {
	// IDEncoding selects how trace and span ids are written: "hex" (default)
	// or "base64".
	IDEncoding pcommon.IDEncoding `mapstructure:"id_encoding"`

	// prevent unkeyed literal initialization
	_ struct{}
}

// Validate checks if the exporter configuration is valid
func (cfg *Config) Validate() error {
	switch cfg.IDEncoding {
	case pcommon.IDEncodingHex, pcommon.IDEncodingBase64:
		return nil
	}
	return fmt.Errorf("id_encoding %d is not supported", int32(cfg.IDEncoding))
}
