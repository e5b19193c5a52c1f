// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package internal // import "go.opentelemetry.io/jsonline/cmd/jsonlinelog/internal"

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go.opentelemetry.io/jsonline/confmap"
	"go.opentelemetry.io/jsonline/exporter"
	"go.opentelemetry.io/jsonline/exporter/consoleexporter"
	"go.opentelemetry.io/jsonline/exporter/jsonlineexporter"
	"go.opentelemetry.io/jsonline/exporter/linesink"
	"go.opentelemetry.io/jsonline/internal/version"
	"go.opentelemetry.io/jsonline/pdata/pcommon"
)

type flagValues struct {
	configFile   string
	logLevel     string
	input        string
	output       string
	exporters    []string
	batchSize    int
	batchTimeout time.Duration
	metricsAddr  string
}

// Command is the main entrypoint for this application.
func Command() *cobra.Command {
	flags := &flagValues{}
	cmd := &cobra.Command{
		SilenceUsage:  true, // Don't print usage on Run error.
		SilenceErrors: true, // Don't print errors; main does it.
		Use:           "jsonlinelog",
		Short:         "Replays NDJSON log entries through the console and OTLP/JSON line exporters",
		Long: fmt.Sprintf("jsonlinelog (%s)", version.Version) + `

jsonlinelog reads one JSON log entry per line from the input, batches the
entries and writes every batch through the enabled exporters. All exporters
share a single output stream: their lines never interleave.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(flags.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			cfg, err := loadConfig(cmd, flags, logger)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd, cfg, logger)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "level of the tool's own logs (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.input, "input", inputStdin, `NDJSON input file, "-" for standard input`)
	cmd.PersistentFlags().StringVar(&flags.output, "output", outputStdout, `"stdout", "stderr" or a file to append to`)
	cmd.PersistentFlags().StringSliceVar(&flags.exporters, "exporters", nil, "exporters to enable (jsonline, console)")
	cmd.PersistentFlags().IntVar(&flags.batchSize, "batch-size", 0, "maximum number of records per batch")
	cmd.PersistentFlags().DurationVar(&flags.batchTimeout, "batch-timeout", 0, "flush a partial batch after this long")
	cmd.PersistentFlags().StringVar(&flags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	cmd.AddCommand(newValidateCommand(flags))
	cmd.AddCommand(versionCommand())
	return cmd
}

func newValidateCommand(flags *flagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validates the configuration without replaying anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(flags.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if _, err = loadConfig(cmd, flags, logger); err != nil {
				return err
			}
			cmd.Println("configuration is valid")
			return nil
		},
	}
}

func newLogger(level string, errOut io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.Lock(zapcore.AddSync(errOut)), lvl)
	return zap.New(core, zap.ErrorOutput(zapcore.Lock(zapcore.AddSync(errOut)))), nil
}

// loadConfig layers the defaults, the configuration file, JSONLINE_*
// environment variables and the explicitly set flags, in that order.
func loadConfig(cmd *cobra.Command, flags *flagValues, logger *zap.Logger) (*Config, error) {
	conf := confmap.New()
	if flags.configFile != "" {
		fileConf, err := confmap.LoadFile(flags.configFile)
		if err != nil {
			return nil, err
		}
		if err = fileConf.Expand(logger); err != nil {
			return nil, fmt.Errorf("failed to expand configuration: %w", err)
		}
		if err = conf.Merge(fileConf); err != nil {
			return nil, fmt.Errorf("failed to merge configuration file: %w", err)
		}
	}
	envConf := confmap.New()
	if err := envConf.ApplyEnv(confmap.EnvPrefix); err != nil {
		return nil, err
	}
	if err := conf.Merge(envConf); err != nil {
		return nil, fmt.Errorf("failed to merge environment overrides: %w", err)
	}

	cfg := NewDefaultConfig()
	if err := conf.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	fs := cmd.Flags()
	if fs.Changed("input") {
		cfg.Input = flags.input
	}
	if fs.Changed("output") {
		cfg.Output = flags.output
	}
	if fs.Changed("exporters") {
		cfg.Exporters = flags.exporters
	}
	if fs.Changed("batch-size") {
		cfg.Batch.Size = flags.batchSize
	}
	if fs.Changed("batch-timeout") {
		cfg.Batch.Timeout = flags.batchTimeout
	}
	if fs.Changed("metrics-addr") {
		cfg.Metrics.Address = flags.metricsAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cmd *cobra.Command, cfg *Config, logger *zap.Logger) (err error) {
	sink, err := openSink(cmd, cfg.Output)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, sink.Close()) }()

	input, closeInput, err := openInput(cmd, cfg.Input)
	if err != nil {
		return err
	}
	defer closeInput()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	res, resErr := pcommon.DetectResource(ctx, cfg.ServiceName)
	if resErr != nil {
		logger.Warn("Resource detection incomplete", zap.Error(resErr))
	}

	set := exporter.Settings{
		Logger:     logger,
		Sink:       sink,
		Resource:   res,
		Registerer: reg,
	}
	exporters, err := newExporters(cfg, set)
	if err != nil {
		return err
	}
	defer func() {
		for _, exp := range exporters {
			err = multierr.Append(err, exp.Shutdown(context.WithoutCancel(ctx)))
		}
	}()

	if cfg.Metrics.Address != "" {
		stop, serveErr := serveMetrics(cfg.Metrics.Address, reg, logger)
		if serveErr != nil {
			return serveErr
		}
		defer func() { err = multierr.Append(err, stop(context.WithoutCancel(ctx))) }()
	}

	logger.Info("Replaying log entries",
		zap.Strings("exporters", cfg.Exporters),
		zap.String("input", cfg.Input),
		zap.String("output", cfg.Output))

	p := &pipeline{logger: logger, exporters: exporters, batch: cfg.Batch, now: time.Now}
	err = p.run(ctx, input)
	logger.Info("Replay finished", zap.Int64("lines written", sink.Lines()), zap.Int64("bytes written", sink.Bytes()))
	return err
}

func newExporters(cfg *Config, set exporter.Settings) ([]exporter.Logs, error) {
	exporters := make([]exporter.Logs, 0, len(cfg.Exporters))
	for _, name := range cfg.Exporters {
		set.ID = name
		var (
			exp exporter.Logs
			err error
		)
		switch name {
		case jsonlineexporter.Type:
			exp, err = jsonlineexporter.New(&cfg.JSONLine, set)
		case consoleexporter.Type:
			exp, err = consoleexporter.New(&cfg.Console, set)
		default:
			err = fmt.Errorf("unknown exporter %q", name)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create exporter %q: %w", name, err)
		}
		exporters = append(exporters, exp)
	}
	return exporters, nil
}

func openSink(cmd *cobra.Command, output string) (*linesink.Sink, error) {
	switch output {
	case outputStdout:
		return linesink.New(cmd.OutOrStdout())
	case outputStderr:
		return linesink.New(cmd.ErrOrStderr())
	}
	return linesink.OpenFile(output)
}

// stdinReader hides the Close method of the standard input. Closing a
// terminal does not interrupt a blocked read.
type stdinReader struct {
	io.Reader
}

func openInput(cmd *cobra.Command, input string) (io.Reader, func(), error) {
	if input == inputStdin {
		return stdinReader{cmd.InOrStdin()}, func() {}, nil
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// serveMetrics starts the /metrics endpoint and returns the function that
// stops it.
func serveMetrics(addr string, reg *prometheus.Registry, logger *zap.Logger) (func(context.Context) error, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %q: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if serveErr := srv.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("Metrics server failed", zap.Error(serveErr))
		}
	}()
	logger.Info("Serving metrics", zap.String("address", ln.Addr().String()))

	return func(ctx context.Context) error {
		shutdownErr := srv.Shutdown(ctx)
		<-done
		return shutdownErr
	}, nil
}
