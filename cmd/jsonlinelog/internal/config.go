// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package internal // import "go.opentelemetry.io/jsonline/cmd/jsonlinelog/internal"

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"go.opentelemetry.io/jsonline/exporter/consoleexporter"
	"go.opentelemetry.io/jsonline/exporter/jsonlineexporter"
)

const (
	outputStdout = "stdout"
	outputStderr = "stderr"
	inputStdin   = "-"
)

// Config is the configuration of the jsonlinelog command.
type Config struct {
	// Exporters lists the exporters every batch is sent to, in order.
	Exporters []string `mapstructure:"exporters"`
	// Input is the NDJSON file to replay, "-" for standard input.
	Input string `mapstructure:"input"`
	// Output is "stdout", "stderr" or the path of a file to append to.
	Output string `mapstructure:"output"`
	// ServiceName is used when the environment does not provide one.
	ServiceName string        `mapstructure:"service_name"`
	Batch       BatchConfig   `mapstructure:"batch"`
	Metrics     MetricsConfig `mapstructure:"metrics"`

	JSONLine jsonlineexporter.Config `mapstructure:"jsonline"`
	Console  consoleexporter.Config  `mapstructure:"console"`
}

// BatchConfig controls when records are handed to the exporters.
type BatchConfig struct {
	// Size is the maximum number of records in a batch.
	Size int `mapstructure:"size"`
	// Timeout flushes a partial batch after this long.
	Timeout time.Duration `mapstructure:"timeout"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	// Address serves /metrics when not empty, e.g. "localhost:8888".
	Address string `mapstructure:"address"`
}

// NewDefaultConfig returns the configuration used when no file is given.
func NewDefaultConfig() *Config {
	return &Config{
		Exporters:   []string{jsonlineexporter.Type},
		Input:       inputStdin,
		Output:      outputStdout,
		ServiceName: "jsonlinelog",
		Batch: BatchConfig{
			Size:    512,
			Timeout: time.Second,
		},
		JSONLine: *jsonlineexporter.NewDefaultConfig(),
		Console:  *consoleexporter.NewDefaultConfig(),
	}
}

// Validate checks if the configuration is valid.
func (cfg *Config) Validate() error {
	var errs error
	if len(cfg.Exporters) == 0 {
		errs = multierr.Append(errs, errors.New("at least one exporter must be enabled"))
	}
	seen := map[string]bool{}
	for _, name := range cfg.Exporters {
		switch name {
		case jsonlineexporter.Type, consoleexporter.Type:
		default:
			errs = multierr.Append(errs, fmt.Errorf("unknown exporter %q", name))
			continue
		}
		if seen[name] {
			errs = multierr.Append(errs, fmt.Errorf("exporter %q is listed more than once", name))
		}
		seen[name] = true
	}
	if cfg.Input == "" {
		errs = multierr.Append(errs, errors.New("input must not be empty"))
	}
	if cfg.Output == "" {
		errs = multierr.Append(errs, errors.New("output must not be empty"))
	}
	if cfg.Batch.Size <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("batch size must be positive, got %d", cfg.Batch.Size))
	}
	if cfg.Batch.Timeout <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("batch timeout must be positive, got %v", cfg.Batch.Timeout))
	}
	if err := cfg.JSONLine.Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("jsonline: %w", err))
	}
	if err := cfg.Console.Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("console: %w", err))
	}
	return errs
}
