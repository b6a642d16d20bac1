package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/noah-isme/toko-cli/internal/app"
	"github.com/noah-isme/toko-cli/internal/config"
	"github.com/noah-isme/toko-cli/internal/obs"
	"github.com/noah-isme/toko-cli/internal/shell"
)

func main() {
	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run drives one session: menu text goes to stdout, logs to stderr.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel, stderr).With().Str("env", cfg.AppEnv).Logger()

	if cfg.TracingEnabled {
		shutdown, err := obs.InitTracer(ctx, obs.TracingConfig{
			ServiceName:   "toko-cli",
			Endpoint:      cfg.TracingEndpoint,
			SamplingRatio: cfg.TracingSampling,
			Environment:   cfg.AppEnv,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("tracing disabled")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Warn().Err(err).Msg("tracer shutdown")
				}
			}()
		}
	}

	registry := prometheus.NewRegistry()
	session, err := app.NewSession(app.SessionConfig{
		Out:              stdout,
		Logger:           logger,
		MetricsNamespace: cfg.MetricsNamespace,
		Registry:         registry,
	})
	if err != nil {
		return err
	}
	session.Start()

	if err := shell.New(session, stdin).Run(ctx); err != nil {
		return err
	}
	if cfg.MetricsDump {
		if err := obs.DumpMetrics(logger, registry); err != nil {
			logger.Warn().Err(err).Msg("metrics dump failed")
		}
	}
	return nil
}
