package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/skypath/internal/models"
)

type AirportHandler struct {
	engine Engine
}

func NewAirportHandler(engine Engine) *AirportHandler {
	return &AirportHandler{engine: engine}
}

// List returns every airport in load order.
func (h *AirportHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.engine.Airports())
}

func (h *AirportHandler) Get(c echo.Context) error {
	code := c.Param("code")
	airport, ok := h.engine.Lookup(code)
	if !ok {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "Airport not found",
			Message: `No airport with code "` + code + `".`,
			Code:    http.StatusNotFound,
		})
	}
	return c.JSON(http.StatusOK, airport)
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
