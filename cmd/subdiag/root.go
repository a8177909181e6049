package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dwhensley/subdiag"
	"github.com/dwhensley/subdiag/blobstore"
	"github.com/dwhensley/subdiag/codec"
	"github.com/dwhensley/subdiag/internal/config"
	subdiagprom "github.com/dwhensley/subdiag/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

// app holds the state shared by every subcommand.
type app struct {
	configPath string
	overrides  config.Config

	cfg      *config.Config
	logger   *subdiag.Logger
	analyzer *subdiag.Analyzer
	store    blobstore.BlobStore
	metrics  *http.Server

	// newStore is replaced in tests.
	newStore func(ctx context.Context, sc config.StoreConfig) (blobstore.BlobStore, error)
}

func newRootCmd() *cobra.Command {
	a := &app{newStore: openStore}

	root := &cobra.Command{
		Use:           "subdiag",
		Short:         "Analyze submarine diagnostic reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.shutdown(cmd.Context())
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML config file")
	f.StringVar(&a.overrides.Store.Kind, "store", "", "report store: local, memory, minio or s3")
	f.StringVar(&a.overrides.Store.Root, "root", "", "root directory of the local store")
	f.StringVar(&a.overrides.Store.Bucket, "bucket", "", "bucket of the minio or s3 store")
	f.StringVar(&a.overrides.Store.Prefix, "key-prefix", "", "key prefix inside the bucket")
	f.StringVar(&a.overrides.Store.Endpoint, "endpoint", "", "object store endpoint")
	f.StringVar(&a.overrides.Store.Region, "region", "", "object store region")
	f.StringVar(&a.overrides.Log.Level, "log-level", "", "debug, info, warn or error")
	f.StringVar(&a.overrides.Log.Format, "log-format", "", "text or json")
	f.StringVar(&a.overrides.Analyzer.Codec, "codec", "", fmt.Sprintf("codec for saved reports: %v", codec.Names()))
	f.IntVar(&a.overrides.Analyzer.MaxWorkers, "workers", 0, "reports analyzed concurrently by batch")
	f.BoolVar(&a.overrides.Analyzer.Sequential, "sequential", false, "compute life-support ratings one after the other")
	f.StringVar(&a.overrides.Metrics.Addr, "metrics-addr", "", "serve Prometheus metrics on this address")

	root.AddCommand(
		newReportCmd(a),
		newExplainCmd(a),
		newBatchCmd(a),
	)
	return root
}

// setup loads the configuration, applies explicitly set flags on top and builds the analyzer.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.applyOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Log.SlogLevel()
	handlerOpts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		a.logger = subdiag.NewLogger(slog.NewJSONHandler(cmd.ErrOrStderr(), handlerOpts))
	} else {
		a.logger = subdiag.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), handlerOpts))
	}

	c, _ := codec.ByName(cfg.Analyzer.Codec)
	opts := []subdiag.Option{
		subdiag.WithLogger(a.logger),
		subdiag.WithCodec(c),
		subdiag.WithMaxWorkers(cfg.Analyzer.MaxWorkers),
		subdiag.WithReadLimit(cfg.Analyzer.ReadLimit),
		subdiag.WithMemoryLimit(cfg.Analyzer.MemoryLimit),
	}
	if cfg.Analyzer.Sequential {
		opts = append(opts, subdiag.WithSequentialRatings())
	}
	if cfg.Metrics.Addr != "" {
		mc, err := a.serveMetrics(cfg.Metrics.Addr)
		if err != nil {
			return err
		}
		opts = append(opts, subdiag.WithMetricsCollector(mc))
	}
	a.analyzer = subdiag.New(opts...)

	store, err := a.newStore(cmd.Context(), cfg.Store)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Kind, err)
	}
	a.store = store
	return nil
}

func (a *app) applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	o := a.overrides
	set := func(name string, dst *string, v string) {
		if f.Changed(name) {
			*dst = v
		}
	}
	set("store", &cfg.Store.Kind, o.Store.Kind)
	set("root", &cfg.Store.Root, o.Store.Root)
	set("bucket", &cfg.Store.Bucket, o.Store.Bucket)
	set("key-prefix", &cfg.Store.Prefix, o.Store.Prefix)
	set("endpoint", &cfg.Store.Endpoint, o.Store.Endpoint)
	set("region", &cfg.Store.Region, o.Store.Region)
	set("log-level", &cfg.Log.Level, o.Log.Level)
	set("log-format", &cfg.Log.Format, o.Log.Format)
	set("codec", &cfg.Analyzer.Codec, o.Analyzer.Codec)
	set("metrics-addr", &cfg.Metrics.Addr, o.Metrics.Addr)
	if f.Changed("workers") {
		cfg.Analyzer.MaxWorkers = o.Analyzer.MaxWorkers
	}
	if f.Changed("sequential") {
		cfg.Analyzer.Sequential = o.Analyzer.Sequential
	}
}

func (a *app) serveMetrics(addr string) (*subdiagprom.Collector, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	mc, err := subdiagprom.NewCollector(reg, "subdiag")
	if err != nil {
		return nil, err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	a.metrics = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := a.metrics.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", "addr", addr, "error", err)
		}
	}()
	a.logger.Info("serving metrics", "addr", ln.Addr().String())
	return mc, nil
}

func (a *app) shutdown(ctx context.Context) error {
	if a.metrics == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	return a.metrics.Shutdown(ctx)
}
