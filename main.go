package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/netutil"

	"opsmonitor/internal/cache"
	"opsmonitor/internal/config"
	"opsmonitor/internal/handler"
	"opsmonitor/internal/metrics"
	custommiddleware "opsmonitor/internal/middleware"
	"opsmonitor/internal/querytrace"
	"opsmonitor/internal/repository"
	"opsmonitor/internal/service"
	"opsmonitor/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store := telemetry.NewStore(cfg.Telemetry.MaxCapacity)

	pathCache, err := cache.New(cfg.Cache.PathCacheSizePow2)
	if err != nil {
		return fmt.Errorf("failed to create path cache: %w", err)
	}
	defer pathCache.Close()

	collectorOpts := []metrics.CollectorOption{metrics.WithPathCache(pathCache)}

	var directory service.SessionDirectory
	switch cfg.Sessions.Backend {
	case config.SessionsBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rdb.AddHook(querytrace.NewRedisHook(store))
		defer rdb.Close()
		directory = repository.NewRedisSessionStore(rdb, cfg.Redis.Prefix)
	default:
		repo, err := repository.NewSessionRepository(ctx, &cfg.Database, querytrace.NewPgxTracer(store))
		if err != nil {
			return fmt.Errorf("failed to create session repository: %w", err)
		}
		defer repo.Close()
		directory = repo
		collectorOpts = append(collectorOpts, metrics.WithPool(repo.Pool()))
	}
	logger.Info("session directory configured", slog.String("backend", cfg.Sessions.Backend))

	activity := service.NewSessionActivity(directory, cfg.Sessions.Timeout, logger)
	sampler := metrics.NewProcessSampler(logger)
	dashboard := service.NewDashboardService(store, activity, &cfg.RateLimit, sampler, logger)
	h := handler.New(dashboard, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(custommiddleware.Metrics(store, telemetry.NewNormalizer(pathCache), cfg.ExcludedPaths()))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Server.MaxRequestBodySize))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, custommiddleware.CategoryGeneral, logger))

	h.Register(e)

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			metrics.NewCollector(store, collectorOpts...),
		)
		e.GET(cfg.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
		logger.Info("prometheus endpoint enabled", slog.String("path", cfg.Metrics.Path))
	}

	go logStoreStats(ctx, logger, store)

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections),
		slog.Int("telemetry_capacity", cfg.Telemetry.MaxCapacity))

	listener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	httpServer := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	go func() {
		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	return nil
}

func logStoreStats(ctx context.Context, logger *slog.Logger, store *telemetry.Store) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := store.Stats()
			logger.Debug("telemetry buffers",
				slog.Int("api_entries", stats.API.Len),
				slog.Uint64("api_evicted", stats.API.Evicted),
				slog.Int("db_entries", stats.DBQuery.Len),
				slog.Uint64("db_evicted", stats.DBQuery.Evicted))
		}
	}
}
