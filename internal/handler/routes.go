package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/dharmasatrya/skypath/internal/cache"
	"github.com/dharmasatrya/skypath/internal/logger"
	"github.com/dharmasatrya/skypath/internal/ratelimit"
	"github.com/dharmasatrya/skypath/internal/telemetry"
)

type ServerConfig struct {
	Engine         Engine
	Cache          cache.Cache
	Limiter        *ratelimit.ClientLimiter
	Metrics        *telemetry.SearchMetrics
	Logger         *logger.Logger
	TracerProvider trace.TracerProvider
	RequestTimeout time.Duration
}

// NewServer builds the echo instance with middleware and routes. Limiter,
// Metrics, Cache and TracerProvider are optional.
func NewServer(cfg ServerConfig) *echo.Echo {
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(Tracing(cfg.TracerProvider))
	e.Use(ContextLogger(cfg.Logger))
	e.Use(RequestLogger(cfg.Logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))
	if cfg.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
			Timeout: cfg.RequestTimeout,
		}))
	}

	airports := NewAirportHandler(cfg.Engine)
	search := NewSearchHandler(cfg.Engine, cfg.Cache, cfg.Metrics)

	var searchMiddleware []echo.MiddlewareFunc
	if cfg.Limiter != nil {
		searchMiddleware = append(searchMiddleware, ratelimit.Middleware(cfg.Limiter))
	}

	api := e.Group("/api")
	api.GET("/airports", airports.List)
	api.GET("/airports/:code", airports.Get)
	api.GET("/search", search.Search, searchMiddleware...)
	e.GET("/health", HealthHandler)

	return e
}
