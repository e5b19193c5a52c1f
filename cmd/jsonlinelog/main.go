// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Program jsonlinelog replays newline-delimited JSON log entries through the
// console and OTLP/JSON line exporters.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/jsonline/cmd/jsonlinelog/internal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := internal.Command().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
