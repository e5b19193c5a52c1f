// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build information of the jsonlinelog binary.
package version // import "go.opentelemetry.io/jsonline/internal/version"

import (
	"fmt"
	"runtime"
	"strings"
)

const (
	buildDev     = "dev"
	buildRelease = "release"
)

// Version is replaced at link time with -X.
var Version = "latest"

// GitHash is replaced at link time with -X.
var GitHash = "<NOT PROPERLY GENERATED>"

// BuildType should be one of (dev, release).
var BuildType = buildDev

// IsDevBuild returns true if this is a development (local) build.
func IsDevBuild() bool {
	return BuildType == buildDev
}

// IsReleaseBuild returns true if this is a release build.
func IsReleaseBuild() bool {
	return BuildType == buildRelease
}

// Info has properties about the build and runtime.
type Info [][2]string

// Current returns the build information of the running binary.
func Current() Info {
	return Info{
		{"Version", Version},
		{"GitHash", GitHash},
		{"BuildType", BuildType},
		{"Goversion", runtime.Version()},
		{"OS", runtime.GOOS},
		{"Architecture", runtime.GOARCH},
	}
}

// String returns the properties one per line, names left aligned.
func (i Info) String() string {
	var sb strings.Builder
	width := 0
	for _, prop := range i {
		width = max(width, len(prop[0]))
	}
	for _, prop := range i {
		fmt.Fprintf(&sb, "%*s %s\n", -width, prop[0], prop[1])
	}
	return sb.String()
}
