package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/dharmasatrya/skypath/internal/cache"
	"github.com/dharmasatrya/skypath/internal/filter"
	"github.com/dharmasatrya/skypath/internal/logger"
	"github.com/dharmasatrya/skypath/internal/models"
	"github.com/dharmasatrya/skypath/internal/telemetry"
)

// Engine is the part of the search engine the HTTP layer depends on.
type Engine interface {
	Airports() []models.Airport
	Lookup(code string) (models.Airport, bool)
	Search(origin, destination, date string) ([]models.Itinerary, error)
}

type SearchHandler struct {
	engine  Engine
	cache   cache.Cache
	metrics *telemetry.SearchMetrics
}

// NewSearchHandler wires the search endpoint. metrics may be nil.
func NewSearchHandler(engine Engine, c cache.Cache, metrics *telemetry.SearchMetrics) *SearchHandler {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	return &SearchHandler{
		engine:  engine,
		cache:   c,
		metrics: metrics,
	}
}

func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()
	log := logger.FromContext(ctx)

	ctx, span := telemetry.Tracer().Start(ctx, "search.itineraries")
	defer span.End()

	req, parseErr := bindSearchRequest(c)
	span.SetAttributes(
		attribute.String("search.origin", req.Origin),
		attribute.String("search.destination", req.Destination),
		attribute.String("search.date", req.Date),
	)

	if err := req.Validate(); err != nil {
		h.record(ctx, "invalid")
		return badRequest(c, err)
	}
	if parseErr != nil {
		h.record(ctx, "invalid")
		return badRequest(c, parseErr)
	}
	for _, endpoint := range []struct{ field, code string }{
		{"origin", req.Origin},
		{"destination", req.Destination},
	} {
		if _, ok := h.engine.Lookup(endpoint.code); !ok {
			h.record(ctx, "invalid")
			return invalidAirport(c, endpoint.field, endpoint.code)
		}
	}

	key := req.Key()
	itineraries, cacheHit := h.cache.Get(ctx, key)
	if !cacheHit {
		var err error
		itineraries, err = h.engine.Search(req.Origin, req.Destination, req.Date)
		if err != nil {
			log.Error().Err(err).
				Str("origin", req.Origin).
				Str("destination", req.Destination).
				Str("date", req.Date).
				Msg("search failed")
			span.RecordError(err)
			span.SetStatus(codes.Error, "search failed")
			h.record(ctx, "error")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "Search failed",
				Message: searchFailureMessage(err),
				Code:    http.StatusInternalServerError,
			})
		}
		if err := ctx.Err(); err != nil {
			h.record(ctx, "timeout")
			return err
		}
		if err := h.cache.Set(ctx, key, itineraries); err != nil {
			log.Warn().Err(err).Msg("failed to cache search results")
		}
	}

	filtered := filter.Apply(itineraries, req.Filters, req.SortBy)

	span.SetAttributes(
		attribute.Int("search.results", len(filtered)),
		attribute.Bool("search.cache_hit", cacheHit),
	)
	h.record(ctx, "ok")
	if h.metrics != nil {
		h.metrics.Results.Record(ctx, int64(len(filtered)))
	}

	log.Info().
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Str("date", req.Date).
		Int("results", len(filtered)).
		Bool("cache_hit", cacheHit).
		Msg("search completed")

	return c.JSON(http.StatusOK, models.SearchResponse{
		Itineraries: filtered,
		Metadata: models.SearchMetadata{
			TotalResults: len(filtered),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     cacheHit,
		},
	})
}

func invalidAirport(c echo.Context, field, code string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "Invalid airport",
		Message: `Invalid airport code for ` + field + `: "` + code + `". Please select an airport from the list.`,
		Code:    http.StatusBadRequest,
	})
}

func (h *SearchHandler) record(ctx context.Context, outcome string) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("search.outcome", outcome))
	if h.metrics == nil {
		return
	}
	h.metrics.Requests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func searchFailureMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "An error occurred while searching. Please try again."
}
