package filter

import (
	"strings"

	"github.com/dharmasatrya/skypath/internal/models"
	"github.com/dharmasatrya/skypath/internal/ranking"
)

// Apply filters itineraries and orders the remainder by sortBy. The input
// slice is left untouched.
func Apply(itineraries []models.Itinerary, filters *models.SearchFilters, sortBy string) []models.Itinerary {
	filtered := applyFilters(itineraries, filters)
	ranking.SortBy(filtered, sortBy)
	return filtered
}

func applyFilters(itineraries []models.Itinerary, filters *models.SearchFilters) []models.Itinerary {
	result := make([]models.Itinerary, 0, len(itineraries))

	for _, it := range itineraries {
		if filters.IsEmpty() || matchesFilters(it, filters) {
			result = append(result, it)
		}
	}

	return result
}

func matchesFilters(it models.Itinerary, filters *models.SearchFilters) bool {
	if filters.MaxStops != nil && it.Stops() > *filters.MaxStops {
		return false
	}

	if filters.MaxPrice != nil && it.TotalPrice > *filters.MaxPrice {
		return false
	}

	if len(filters.Airlines) > 0 {
		for _, s := range it.Segments {
			if !containsFold(filters.Airlines, s.Airline) {
				return false
			}
		}
	}

	return true
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), s) {
			return true
		}
	}
	return false
}
