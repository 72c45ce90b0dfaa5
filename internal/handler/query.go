package handler

import (
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/skypath/internal/models"
)

// bindSearchRequest reads the search query string. The request is always
// returned normalized; the error reports a malformed optional filter and is
// meant to be checked after the required fields are validated.
func bindSearchRequest(c echo.Context) (models.SearchRequest, error) {
	req := models.SearchRequest{
		Origin:      c.QueryParam("origin"),
		Destination: c.QueryParam("destination"),
		Date:        c.QueryParam("date"),
		SortBy:      c.QueryParam("sort"),
	}
	req.Normalize()

	filters, err := parseFilters(c)
	if !filters.IsEmpty() {
		req.Filters = filters
	}
	return req, err
}

func parseFilters(c echo.Context) (*models.SearchFilters, error) {
	filters := &models.SearchFilters{}

	if v := strings.TrimSpace(c.QueryParam("maxStops")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filters, models.ErrInvalidMaxStops
		}
		filters.MaxStops = &n
	}

	if v := strings.TrimSpace(c.QueryParam("maxPrice")); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
			return filters, models.ErrInvalidMaxPrice
		}
		filters.MaxPrice = &p
	}

	if v := c.QueryParam("airlines"); v != "" {
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				filters.Airlines = append(filters.Airlines, a)
			}
		}
	}

	return filters, nil
}
