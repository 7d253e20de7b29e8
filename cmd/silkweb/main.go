// Command silkweb serves the bilingual site with its silk backdrop.
//
// Configuration comes from an optional file given with -config and from
// SILK_* environment variables, e.g.
//
//	SILK_CONTACT_WEBHOOK_URL=https://script.google.com/macros/s/.../exec silkweb
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/silk"
	"github.com/gogpu/silk/internal/banner"
	"github.com/gogpu/silk/internal/config"
	"github.com/gogpu/silk/internal/server"
)

func main() {
	configPath := flag.String("config", "", "config file (JSON, YAML or TOML)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "silkweb: logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()
	silk.SetLogger(slog.New(zapslog.NewHandler(logger.Core())))

	if err := run(cfg, logger); err != nil {
		logger.Fatal("silkweb stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lc := zap.NewProductionConfig()
	if cfg.Dev {
		lc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	lc.Level = level
	return lc.Build()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	opts := []server.Option{server.WithRegistry(reg)}

	if cfg.Banner.Font != "" {
		data, err := os.ReadFile(cfg.Banner.Font)
		if err != nil {
			return fmt.Errorf("banner font: %w", err)
		}
		r, err := banner.New(data)
		if err != nil {
			return fmt.Errorf("banner font %s: %w", cfg.Banner.Font, err)
		}
		opts = append(opts, server.WithBanner(r))
	}

	srv, err := server.New(cfg, opts...)
	if err != nil {
		return err
	}

	hs := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     zap.NewStdLog(logger.Named("http")),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening",
			zap.String("addr", cfg.Addr),
			zap.Bool("contact", cfg.Contact.WebhookURL != ""),
			zap.String("quality", cfg.Backdrop.Quality),
		)
		if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return hs.Shutdown(sctx)
	})
	return g.Wait()
}
