package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"roident/internal/platform/config"
	"roident/internal/platform/httpserver"
	"roident/internal/platform/logger"
	platformmetrics "roident/internal/platform/metrics"
	platformredis "roident/internal/platform/redis"
	"roident/internal/ratelimit"
	ratelimitmetrics "roident/internal/ratelimit/metrics"
	ratelimitmw "roident/internal/ratelimit/middleware"
	httptransport "roident/internal/transport/http"
	"roident/internal/validation"
	"roident/internal/validation/handler"
	validationmetrics "roident/internal/validation/metrics"
)

const limiterIdleTTL = 10 * time.Minute

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Validation logic lives in pkg/identifiers.
func main() {
	configPath := flag.String("config", os.Getenv("ROIDENT_CONFIG"), "path to an optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := validation.New(log,
		validation.WithMetrics(validationmetrics.New(reg)),
		validation.WithBatchLimits(cfg.BatchLimit, cfg.BatchConcurrency),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter, closeLimiter, err := buildLimiter(ctx, cfg, log)
	if err != nil {
		log.Error("failed to set up rate limiter", "error", err)
		os.Exit(1)
	}
	defer closeLimiter()

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:     log,
		Validation: handler.New(svc, log),
		RateLimit: ratelimitmw.New(limiter, log,
			ratelimitmw.WithDisabled(cfg.RateLimitRPS <= 0),
			ratelimitmw.WithMetrics(ratelimitmetrics.New(reg)),
		),
		HTTPMetrics:    platformmetrics.New(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting roident", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// buildLimiter shares counters through Redis when it is configured and
// falls back to per-instance token buckets otherwise.
func buildLimiter(ctx context.Context, cfg config.Server, log *slog.Logger) (ratelimit.Checker, func(), error) {
	client, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst, limiterIdleTTL), func() {}, nil
	}

	log.Info("rate limit counters shared through redis")
	limiter := ratelimit.NewRedis(client.Client, cfg.RateLimitRPS, cfg.RateLimitBurst)
	return limiter, func() { _ = client.Close() }, nil
}
