package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dharmasatrya/skypath/internal/cache"
	"github.com/dharmasatrya/skypath/internal/config"
	"github.com/dharmasatrya/skypath/internal/dataset"
	"github.com/dharmasatrya/skypath/internal/handler"
	"github.com/dharmasatrya/skypath/internal/logger"
	"github.com/dharmasatrya/skypath/internal/ratelimit"
	"github.com/dharmasatrya/skypath/internal/search"
	"github.com/dharmasatrya/skypath/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New(true, "info")
		l.Fatal().Err(err).Msg("Invalid configuration")
	}

	log := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Environment: cfg.AppEnv,
	})
	if err != nil {
		return err
	}
	if cfg.Telemetry.Enabled() {
		log.Info().Str("endpoint", cfg.Telemetry.Endpoint).Msg("OpenTelemetry export enabled")
	}

	data, err := dataset.Load(cfg.DataFile)
	if err != nil {
		return err
	}
	for _, w := range data.Warnings() {
		log.Warn().Str("source", data.Source).Msg(w)
	}

	engine := search.New(data.Airports, data.Flights)
	stats := engine.Stats()
	log.Info().
		Str("source", data.Source).
		Int("airports", stats.Airports).
		Int("flights", stats.Flights).
		Int("dates", stats.Dates).
		Int("indexed", stats.Index.Indexed).
		Int("unknown_origin", stats.Index.UnknownOrigin).
		Int("invalid_time", stats.Index.InvalidTime).
		Msg("Flight data loaded")

	var searchCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		})
		if err != nil {
			return err
		}
		searchCache = redisCache
		log.Info().Str("addr", cfg.Redis.Addr()).Dur("ttl", cfg.Redis.TTL).Msg("Redis cache enabled")
	} else {
		searchCache = cache.NewNoOpCache()
		log.Info().Msg("Cache disabled")
	}

	limiter := ratelimit.NewClientLimiter(ratelimit.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RPS,
		BurstSize:         cfg.RateLimit.Burst,
	})
	go limiter.Run(ctx, time.Minute)

	metrics, err := telemetry.NewSearchMetrics(nil)
	if err != nil {
		return err
	}

	e := handler.NewServer(handler.ServerConfig{
		Engine:         engine,
		Cache:          searchCache,
		Limiter:        limiter,
		Metrics:        metrics,
		Logger:         log,
		TracerProvider: otel.GetTracerProvider(),
		RequestTimeout: cfg.RequestTimeout,
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting SkyPath server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := e.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	if err := searchCache.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
