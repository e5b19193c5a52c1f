// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package linesink // import "go.opentelemetry.io/jsonline/exporter/linesink"

import (
	"errors"

	"golang.org/x/sys/windows"
)

// knownSyncError returns true if the given error is one of the known
// non-actionable errors returned by Sync on Windows:
//
// - sync /dev/stderr: The handle is invalid.
func knownSyncError(err error) bool {
	return errors.Is(err, windows.ERROR_INVALID_HANDLE)
}
