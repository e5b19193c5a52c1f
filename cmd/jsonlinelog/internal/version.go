// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package internal // import "go.opentelemetry.io/jsonline/cmd/jsonlinelog/internal"

import (
	"github.com/spf13/cobra"

	"go.opentelemetry.io/jsonline/internal/version"
)

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version of jsonlinelog",
		Long:  "Prints the version and build information of the jsonlinelog binary",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(version.Current().String())
		},
	}
}
