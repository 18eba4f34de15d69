package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/alecappe-boss/OpenF1/internal/adapters/openf1"
	"github.com/alecappe-boss/OpenF1/internal/adapters/render"
	service "github.com/alecappe-boss/OpenF1/internal/app"
	"github.com/alecappe-boss/OpenF1/internal/config"
	"github.com/alecappe-boss/OpenF1/internal/console"
	"github.com/alecappe-boss/OpenF1/pkg/logger"
	"github.com/alecappe-boss/OpenF1/pkg/metrics"
)

// Metrics server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	client := openf1.New(
		openf1.WithBaseURL(cfg.BaseURL),
		openf1.WithTimeout(cfg.HTTPTimeout()),
	)
	svc := service.New(
		service.WithDataSource(client),
		service.WithLogger(log),
	)

	// Optional Prometheus endpoint, off unless an address is configured.
	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.MetricsAddr)
	}

	menu := console.New(
		console.WithService(svc),
		console.WithPrinter(render.NewPrinter(render.WithMaxRows(cfg.MaxTableRows))),
		console.WithExporter(render.NewExporter(cfg.ExportDir)),
		console.WithLogger(log),
	)

	log.Info(ctx, "starting console", logger.String("base_url", cfg.BaseURL))
	if err := menu.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "console stopped", logger.Error(err))
		return
	}
	log.Info(ctx, "goodbye")
}

// serveMetrics exposes the Prometheus registry until the context ends.
func serveMetrics(ctx context.Context, addr string) {
	log := logger.Named("metrics")

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error(ctx, "metrics server shutdown failed", logger.Error(err))
		}
	}()

	log.Info(ctx, "serving metrics", logger.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error(ctx, "metrics server failed", logger.Error(err))
	}
}
