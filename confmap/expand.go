// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package confmap // import "go.opentelemetry.io/jsonline/confmap"

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"go.opentelemetry.io/jsonline/confmap/internal/envvar"
)

const envSchemeName = "env"

var (
	errTooManyRecursiveExpansions = errors.New("too many recursive expansions")

	errURILimit = errors.New("reached limit of 100 URIs")
)

// Expand replaces every ${env:NAME} reference found in string values with the
// value of the environment variable NAME. A default for an unset variable may
// follow a ":-" suffix: ${env:NAME:-default}. A value made of a single
// reference takes the type of the variable parsed as YAML, so
// `enabled: ${env:ENABLED}` decodes into a bool.
func (l *Conf) Expand(logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &expander{logger: logger}
	expanded, err := e.expandValueRecursively(l.ToStringMap())
	if err != nil {
		return err
	}
	m, ok := expanded.(map[string]any)
	if !ok {
		return fmt.Errorf("unexpected expanded configuration type %T", expanded)
	}
	l.k = NewFromStringMap(m).k
	return nil
}

type expander struct {
	logger *zap.Logger
}

func (e *expander) expandValueRecursively(value any) (any, error) {
	for i := 0; i < 100; i++ {
		val, changed, err := e.expandValue(value)
		if err != nil {
			return nil, err
		}
		if !changed {
			return val, nil
		}
		value = val
	}
	return nil, errTooManyRecursiveExpansions
}

func (e *expander) expandValue(value any) (any, bool, error) {
	switch v := value.(type) {
	case string:
		if !strings.Contains(v, "${") || !strings.Contains(v, "}") {
			// No URIs to expand.
			return value, false, nil
		}

		if strings.Count(v, "}") > 100 {
			// Too many closing brackets. Don't expand to protect from too deep recursion.
			return "", false, errURILimit
		}

		uri := findURI(v)
		if uri != "" && uri == value {
			// If the value is a single URI, then the return value can be anything.
			return e.expandURI(uri)
		}

		// Embedded or nested URIs.
		return e.findAndExpandURI(v)
	case []any:
		nslice := make([]any, 0, len(v))
		nchanged := false
		for _, vint := range v {
			val, changed, err := e.expandValue(vint)
			if err != nil {
				return nil, false, err
			}
			nslice = append(nslice, val)
			nchanged = nchanged || changed
		}
		return nslice, nchanged, nil
	case map[string]any:
		nmap := map[string]any{}
		nchanged := false
		for mk, mv := range v {
			val, changed, err := e.expandValue(mv)
			if err != nil {
				return nil, false, err
			}
			nmap[mk] = val
			nchanged = nchanged || changed
		}
		return nmap, nchanged, nil
	}
	return value, false, nil
}

// findURI finds the URI corresponding to the first closing bracket in input. It returns
// the URI if it is expandable, or an empty string if it is not expandable.
// Note: findURI is only called when input contains a closing bracket.
func findURI(input string) string {
	closeIndex := strings.Index(input, "}")
	openIndex := strings.LastIndex(input[:closeIndex+1], "${")
	if openIndex < 0 {
		// Should not expand because there is a missing ${.
		return ""
	}

	uri := input[openIndex : closeIndex+1]
	if !strings.HasPrefix(uri, "${"+envSchemeName+":") {
		return ""
	}
	return uri
}

// findAndExpandURI attempts to find and expand the first occurrence of an expandable URI in input.
func (e *expander) findAndExpandURI(input string) (output string, changed bool, err error) {
	uri := findURI(input)
	if uri == "" {
		// The first URI in input is not expandable. Strip the first URI from input and check if
		// other URIs are expandable.
		closeIndex := strings.Index(input, "}")
		noExpand := input[:closeIndex+1]
		remaining := input[closeIndex+1:]

		// if remaining does not contain }, there are no URIs left: stop recursion.
		if !strings.Contains(remaining, "}") {
			return input, false, nil
		}

		var expandedRemaining string
		expandedRemaining, changed, err = e.findAndExpandURI(remaining)
		return noExpand + expandedRemaining, changed, err
	}
	repl, err := e.lookup(uri)
	if err != nil {
		return "", false, err
	}
	return strings.ReplaceAll(input, uri, repl), true, nil
}

func (e *expander) expandURI(uri string) (any, bool, error) {
	val, err := e.lookup(uri)
	if err != nil {
		return nil, false, err
	}
	var out any
	if err = yaml.Unmarshal([]byte(val), &out); err != nil {
		// Not valid YAML: keep the raw text.
		return val, true, nil
	}
	if out == nil {
		return val, true, nil
	}
	return out, true, nil
}

// lookup resolves a ${env:NAME[:-default]} reference.
func (e *expander) lookup(uri string) (string, error) {
	name, defaultValue := parseEnvVarURI(uri[len("${"+envSchemeName+":") : len(uri)-1])
	if !envvar.ValidationRegexp.MatchString(name) {
		return "", fmt.Errorf("environment variable %q has invalid name: must match regex %s", name, envvar.ValidationPattern)
	}

	val, exists := os.LookupEnv(name)
	if !exists {
		if defaultValue != nil {
			return *defaultValue, nil
		}
		e.logger.Warn("Configuration references unset environment variable", zap.String("name", name))
	} else if val == "" {
		e.logger.Info("Configuration references empty environment variable", zap.String("name", name))
	}
	return val, nil
}

// returns (var name, default value)
func parseEnvVarURI(uri string) (string, *string) {
	const defaultSuffix = ":-"
	name, defaultValue, hasDefault := strings.Cut(uri, defaultSuffix)
	if hasDefault {
		return name, &defaultValue
	}
	return uri, nil
}
