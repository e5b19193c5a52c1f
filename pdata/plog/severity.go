// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package plog // import "go.opentelemetry.io/jsonline/pdata/plog"

import (
	"strings"
)

// Severity is the OTLP severity number of a log record. 0 means unset.
type Severity int32

const (
	SeverityUnset  Severity = 0
	SeverityTrace  Severity = 1
	SeverityTrace2 Severity = 2
	SeverityTrace3 Severity = 3
	SeverityTrace4 Severity = 4
	SeverityDebug  Severity = 5
	SeverityDebug2 Severity = 6
	SeverityDebug3 Severity = 7
	SeverityDebug4 Severity = 8
	SeverityInfo   Severity = 9
	SeverityInfo2  Severity = 10
	SeverityInfo3  Severity = 11
	SeverityInfo4  Severity = 12
	SeverityWarn   Severity = 13
	SeverityWarn2  Severity = 14
	SeverityWarn3  Severity = 15
	SeverityWarn4  Severity = 16
	SeverityError  Severity = 17
	SeverityError2 Severity = 18
	SeverityError3 Severity = 19
	SeverityError4 Severity = 20
	SeverityFatal  Severity = 21
	SeverityFatal2 Severity = 22
	SeverityFatal3 Severity = 23
	SeverityFatal4 Severity = 24
)

// severityTexts holds the text of each band of four severity numbers.
var severityTexts = [...]string{"Trace", "Debug", "Info", "Warn", "Error", "Fatal"}

// IsSet reports whether s carries a severity.
func (s Severity) IsSet() bool {
	return s != SeverityUnset
}

// Text returns the OTLP severity text derived from the number: one of
// Trace, Debug, Info, Warn, Error or Fatal for 1..24, and "" otherwise.
func (s Severity) Text() string {
	if s < SeverityTrace || s > SeverityFatal4 {
		return ""
	}
	return severityTexts[(s-1)/4]
}

// SeverityFromText parses a level name such as "info", "WARNING" or "Fatal"
// into the first severity number of its band.
func SeverityFromText(text string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "trace", "trce", "verbose":
		return SeverityTrace, true
	case "debug", "dbug":
		return SeverityDebug, true
	case "info", "information":
		return SeverityInfo, true
	case "warn", "warning":
		return SeverityWarn, true
	case "error", "fail":
		return SeverityError, true
	case "fatal", "critical", "crit":
		return SeverityFatal, true
	}
	return SeverityUnset, false
}
