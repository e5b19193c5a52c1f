// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package confmap // import "go.opentelemetry.io/jsonline/confmap"

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"go.yaml.in/yaml/v3"
)

// EnvPrefix is the prefix of environment variables overriding configuration
// keys. JSONLINE_CONSOLE__USE_UTC=true sets console::use_utc.
const EnvPrefix = "JSONLINE_"

// envLevelSeparator separates nesting levels in environment variable names.
const envLevelSeparator = "__"

// NewFromYAML parses a YAML document into a Conf.
func NewFromYAML(b []byte) (*Conf, error) {
	var rawConf map[string]any
	if err := yaml.Unmarshal(b, &rawConf); err != nil {
		return nil, err
	}
	return NewFromStringMap(rawConf), nil
}

// LoadFile reads the YAML configuration file at path.
func LoadFile(path string) (*Conf, error) {
	// Clean the path before using it.
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("unable to read the file %v: %w", path, err)
	}
	conf, err := NewFromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("unable to parse the file %v: %w", path, err)
	}
	return conf, nil
}

// ApplyEnv merges every environment variable starting with prefix into the
// configuration. The remainder of the name is lower-cased and split into
// levels on "__". Values are parsed as YAML so they decode into typed fields.
func (l *Conf) ApplyEnv(prefix string) error {
	provider := env.ProviderWithValue(prefix, KeyDelimiter, func(key, value string) (string, any) {
		name := strings.ToLower(strings.TrimPrefix(key, prefix))
		if name == "" {
			return "", nil
		}
		return strings.ReplaceAll(name, envLevelSeparator, KeyDelimiter), parseEnvValue(value)
	})
	if err := l.k.Load(provider, nil); err != nil {
		return fmt.Errorf("failed to load environment overrides: %w", err)
	}
	return nil
}

func parseEnvValue(value string) any {
	var out any
	if err := yaml.Unmarshal([]byte(value), &out); err != nil || out == nil {
		return value
	}
	switch out.(type) {
	case map[string]any, []any:
		// Structured values are not supported as overrides.
		return value
	}
	return out
}
