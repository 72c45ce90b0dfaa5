package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/skypath/internal/logger"
	"github.com/dharmasatrya/skypath/internal/models"
)

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   validationTitle(err),
		Message: err.Error(),
		Code:    http.StatusBadRequest,
	})
}

func validationTitle(err error) string {
	var ve models.ValidationError
	if !errors.As(err, &ve) {
		return "Invalid request"
	}

	switch ve {
	case models.ErrMissingEndpoints:
		return "Missing required parameters"
	case models.ErrSameEndpoints:
		return "Invalid search"
	case models.ErrInvalidDate:
		return "Invalid date"
	default:
		return "Invalid filter"
	}
}

// ErrorHandler renders errors that escape handlers in the same JSON shape
// as the explicit error responses.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	resp := models.ErrorResponse{
		Error:   "Internal server error",
		Message: "Something went wrong. Please try again.",
		Code:    http.StatusInternalServerError,
	}

	var he *echo.HTTPError
	if errors.Is(err, context.DeadlineExceeded) {
		resp.Code = http.StatusServiceUnavailable
		resp.Error = "Request timeout"
		resp.Message = "The search took too long. Please try again."
	} else if errors.As(err, &he) && he.Code != http.StatusInternalServerError {
		resp.Code = he.Code
		resp.Error = http.StatusText(he.Code)
		if msg, ok := he.Message.(string); ok {
			resp.Message = msg
		} else {
			resp.Message = http.StatusText(he.Code)
		}
	} else {
		logger.FromContext(c.Request().Context()).Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(resp.Code)
	} else {
		writeErr = c.JSON(resp.Code, resp)
	}
	if writeErr != nil {
		logger.FromContext(c.Request().Context()).Error().Err(writeErr).Msg("failed to write error response")
	}
}
