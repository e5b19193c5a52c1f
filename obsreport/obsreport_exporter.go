// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package obsreport // import "go.opentelemetry.io/jsonline/obsreport"

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Key used to identify exporters in metrics.
	ExporterKey = "exporter"

	// Key used to track spans sent by exporters.
	SentSpansKey = "sent_spans"
	// Key used to track spans that failed to be sent by exporters.
	FailedToSendSpansKey = "send_failed_spans"

	// Key used to track logs sent by exporters.
	SentLogRecordsKey = "sent_log_records"
	// Key used to track logs that failed to be sent by exporters.
	FailedToSendLogRecordsKey = "send_failed_log_records"

	namespace = "jsonline"
)

// ExporterSettings are settings for creating an Exporter.
type ExporterSettings struct {
	// ExporterID labels every series reported by the Exporter.
	ExporterID string
	// Registerer receives the counters. Nil keeps them unregistered.
	Registerer prometheus.Registerer
}

// Exporter is a helper to add observability to an exporter.
type Exporter struct {
	exporterID string

	sentLogRecords       prometheus.Counter
	failedToSendLogs     prometheus.Counter
	sentSpans            prometheus.Counter
	failedToSendSpansCnt prometheus.Counter
}

// NewExporter creates a new Exporter. Exporters sharing a Registerer share
// the counter families and are told apart by the exporter label.
func NewExporter(cfg ExporterSettings) (*Exporter, error) {
	vecs := make([]*prometheus.CounterVec, 0, 4)
	for _, def := range []struct{ name, help string }{
		{SentLogRecordsKey, "Number of log record successfully sent to destination."},
		{FailedToSendLogRecordsKey, "Number of log records in failed attempts to send to destination."},
		{SentSpansKey, "Number of spans successfully sent to destination."},
		{FailedToSendSpansKey, "Number of spans in failed attempts to send to destination."},
	} {
		vec, err := registerCounterVec(cfg.Registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: ExporterKey,
			Name:      def.name,
			Help:      def.help,
		}, []string{ExporterKey}))
		if err != nil {
			return nil, err
		}
		vecs = append(vecs, vec)
	}

	return &Exporter{
		exporterID:           cfg.ExporterID,
		sentLogRecords:       vecs[0].WithLabelValues(cfg.ExporterID),
		failedToSendLogs:     vecs[1].WithLabelValues(cfg.ExporterID),
		sentSpans:            vecs[2].WithLabelValues(cfg.ExporterID),
		failedToSendSpansCnt: vecs[3].WithLabelValues(cfg.ExporterID),
	}, nil
}

// EndLogsExportOp records the outcome of a log export: numLogRecords are
// counted as sent when err is nil and as failed otherwise.
func (eor *Exporter) EndLogsExportOp(numLogRecords int, err error) {
	recordOutcome(eor.sentLogRecords, eor.failedToSendLogs, numLogRecords, err)
}

// EndTracesExportOp records the outcome of a span export: numSpans are
// counted as sent when err is nil and as failed otherwise.
func (eor *Exporter) EndTracesExportOp(numSpans int, err error) {
	recordOutcome(eor.sentSpans, eor.failedToSendSpansCnt, numSpans, err)
}

func recordOutcome(sent, failed prometheus.Counter, n int, err error) {
	if err != nil {
		failed.Add(float64(n))
		return
	}
	sent.Add(float64(n))
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if reg == nil {
		return vec, nil
	}
	err := reg.Register(vec)
	if err == nil {
		return vec, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing, nil
		}
	}
	return nil, fmt.Errorf("failed to register exporter metrics: %w", err)
}
