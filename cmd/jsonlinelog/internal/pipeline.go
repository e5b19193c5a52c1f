// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package internal // import "go.opentelemetry.io/jsonline/cmd/jsonlinelog/internal"

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"go.opentelemetry.io/jsonline/cmd/jsonlinelog/internal/replay"
	"go.opentelemetry.io/jsonline/exporter"
	"go.opentelemetry.io/jsonline/pdata/plog"
)

// pipeline batches decoded records and fans every batch out to the exporters.
type pipeline struct {
	logger    *zap.Logger
	exporters []exporter.Logs
	batch     BatchConfig
	now       func() time.Time
}

// run replays input until it ends or ctx is cancelled. The pending batch is
// always flushed before returning. On cancellation an input implementing
// io.Closer is closed and run waits for the reader to exit.
func (p *pipeline) run(ctx context.Context, input io.Reader) error {
	records := make(chan plog.Record)
	readErr := make(chan error, 1)
	go func() {
		defer close(records)
		readErr <- p.read(ctx, replay.NewDecoder(input), records)
	}()

	ticker := time.NewTicker(p.batch.Timeout)
	defer ticker.Stop()

	pending := make([]plog.Record, 0, p.batch.Size)
	flush := func(ctx context.Context) {
		if len(pending) == 0 {
			return
		}
		p.export(ctx, pending)
		pending = make([]plog.Record, 0, p.batch.Size)
	}

	for {
		select {
		case lr, ok := <-records:
			if !ok {
				flush(ctx)
				return <-readErr
			}
			pending = append(pending, lr)
			if len(pending) >= p.batch.Size {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		case <-ctx.Done():
			flush(context.WithoutCancel(ctx))
			stopReader(input, records)
			return nil
		}
	}
}

// stopReader closes input to unblock a pending read and drains records until
// the reader exits. A reader over an input that cannot be closed exits on its
// next record or at the end of the input.
func stopReader(input io.Reader, records <-chan plog.Record) {
	c, ok := input.(io.Closer)
	if !ok {
		return
	}
	_ = c.Close()
	for range records {
	}
}

func (p *pipeline) read(ctx context.Context, dec *replay.Decoder, records chan<- plog.Record) error {
	for {
		lr, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var lineErr *replay.LineError
		if errors.As(err, &lineErr) {
			p.logger.Warn("Skipping malformed input line", zap.Int("line", lineErr.Line), zap.Error(lineErr.Err))
			continue
		}
		if err != nil {
			return err
		}

		observed := p.now()
		lr.ObservedTimestamp = observed
		if lr.Timestamp.IsZero() {
			lr.Timestamp = observed
		}
		select {
		case records <- lr:
		case <-ctx.Done():
			return nil
		}
	}
}

// export hands batch to every exporter. Failures are logged by the exporters
// themselves and do not stop the replay.
func (p *pipeline) export(ctx context.Context, batch []plog.Record) {
	var errs error
	for _, exp := range p.exporters {
		errs = multierr.Append(errs, exp.ExportLogs(ctx, batch))
	}
	if errs != nil {
		p.logger.Debug("Batch export finished with errors", zap.Int("log records", len(batch)), zap.Error(errs))
	}
}
