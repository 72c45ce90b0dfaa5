package ratelimit

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/skypath/internal/models"
)

// Middleware rejects requests over the per-client budget with 429. Clients
// are keyed by echo's RealIP.
func Middleware(limiter *ClientLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:   "Too many requests",
					Message: "Rate limit exceeded. Please slow down and try again.",
					Code:    http.StatusTooManyRequests,
				})
			}
			return next(c)
		}
	}
}
