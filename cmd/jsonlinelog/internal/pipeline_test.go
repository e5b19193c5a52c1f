// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package internal

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"go.opentelemetry.io/jsonline/exporter"
	"go.opentelemetry.io/jsonline/pdata/plog"
)

type recordingExporter struct {
	mu      sync.Mutex
	batches [][]plog.Record
	err     error
}

var _ exporter.Logs = (*recordingExporter)(nil)

func (e *recordingExporter) ExportLogs(_ context.Context, records []plog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.batches = append(e.batches, append([]plog.Record(nil), records...))
	return e.err
}

func (e *recordingExporter) Shutdown(context.Context) error {
	return nil
}

func (e *recordingExporter) batchSizes() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	sizes := make([]int, 0, len(e.batches))
	for _, b := range e.batches {
		sizes = append(sizes, len(b))
	}
	return sizes
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPipeline(logger *zap.Logger, batch BatchConfig, exporters ...exporter.Logs) *pipeline {
	return &pipeline{
		logger:    logger,
		exporters: exporters,
		batch:     batch,
		now:       func() time.Time { return fixedNow },
	}
}

func TestPipelineFlushesFullBatches(t *testing.T) {
	input := strings.Repeat(`{"message":"m"}`+"\n", 5)
	first, second := &recordingExporter{}, &recordingExporter{}
	p := newTestPipeline(zaptest.NewLogger(t), BatchConfig{Size: 2, Timeout: time.Hour}, first, second)

	require.NoError(t, p.run(context.Background(), strings.NewReader(input)))
	assert.Equal(t, []int{2, 2, 1}, first.batchSizes())
	assert.Equal(t, []int{2, 2, 1}, second.batchSizes())
}

func TestPipelineStampsObservedTime(t *testing.T) {
	input := `{"message":"no time"}` + "\n" + `{"time":"2024-01-01T00:00:00Z","message":"with time"}` + "\n"
	exp := &recordingExporter{}
	p := newTestPipeline(zaptest.NewLogger(t), BatchConfig{Size: 10, Timeout: time.Hour}, exp)

	require.NoError(t, p.run(context.Background(), strings.NewReader(input)))
	require.Len(t, exp.batches, 1)
	records := exp.batches[0]
	require.Len(t, records, 2)

	assert.Equal(t, fixedNow, records[0].Timestamp)
	assert.Equal(t, fixedNow, records[0].ObservedTimestamp)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), records[1].Timestamp)
	assert.Equal(t, fixedNow, records[1].ObservedTimestamp)
}

func TestPipelineSkipsMalformedLines(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	input := `{"message":"one"}` + "\n" + `{not json` + "\n\n" + `{"message":"two"}` + "\n"
	exp := &recordingExporter{}
	p := newTestPipeline(zap.New(core), BatchConfig{Size: 10, Timeout: time.Hour}, exp)

	require.NoError(t, p.run(context.Background(), strings.NewReader(input)))
	require.Len(t, exp.batches, 1)
	require.Len(t, exp.batches[0], 2)
	assert.Equal(t, "one", exp.batches[0][0].FormattedMessage)
	assert.Equal(t, "two", exp.batches[0][1].FormattedMessage)

	warnings := logs.FilterMessage("Skipping malformed input line").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, int64(2), warnings[0].ContextMap()["line"])
}

func TestPipelineFlushesOnTimeout(t *testing.T) {
	pr, pw := io.Pipe()
	exp := &recordingExporter{}
	p := newTestPipeline(zaptest.NewLogger(t), BatchConfig{Size: 100, Timeout: 10 * time.Millisecond}, exp)

	done := make(chan error, 1)
	go func() { done <- p.run(context.Background(), pr) }()

	_, err := io.WriteString(pw, `{"message":"slow"}`+"\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return len(exp.batchSizes()) == 1
	}, 5*time.Second, 5*time.Millisecond)

	require.NoError(t, pw.Close())
	require.NoError(t, <-done)
	assert.Equal(t, []int{1}, exp.batchSizes())
}

func TestPipelineFlushesOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	exp := &recordingExporter{}
	p := newTestPipeline(zaptest.NewLogger(t), BatchConfig{Size: 100, Timeout: time.Hour}, exp)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.run(ctx, pr) }()

	_, err := io.WriteString(pw, `{"message":"pending"}`+"\n")
	require.NoError(t, err)
	// The reader only consumes the unterminated line after the first record
	// was handed to the batch loop.
	_, err = io.WriteString(pw, `{"message":"unterminated`)
	require.NoError(t, err)
	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, []int{1}, exp.batchSizes())

	_, err = io.WriteString(pw, "\n")
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestPipelineContinuesAfterExportError(t *testing.T) {
	input := strings.Repeat(`{"message":"m"}`+"\n", 3)
	failing := &recordingExporter{err: errors.New("boom")}
	healthy := &recordingExporter{}
	p := newTestPipeline(zaptest.NewLogger(t), BatchConfig{Size: 1, Timeout: time.Hour}, failing, healthy)

	require.NoError(t, p.run(context.Background(), strings.NewReader(input)))
	assert.Equal(t, []int{1, 1, 1}, failing.batchSizes())
	assert.Equal(t, []int{1, 1, 1}, healthy.batchSizes())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestPipelineReturnsReadError(t *testing.T) {
	p := newTestPipeline(zaptest.NewLogger(t), BatchConfig{Size: 1, Timeout: time.Hour}, &recordingExporter{})
	require.EqualError(t, p.run(context.Background(), failingReader{}), "disk on fire")
}
