package ranking

import (
	"sort"

	"github.com/dharmasatrya/skypath/internal/models"
)

// Sort orders itineraries by total travel time. Ties go to fewer segments,
// then the lower total price, then the flight-number sequence.
func Sort(itineraries []models.Itinerary) {
	sort.SliceStable(itineraries, func(i, j int) bool {
		return byDuration(itineraries[i], itineraries[j])
	})
}

// SortBy orders by the given key. Unknown keys fall back to duration.
func SortBy(itineraries []models.Itinerary, key string) {
	if key != models.SortByPrice {
		Sort(itineraries)
		return
	}

	sort.SliceStable(itineraries, func(i, j int) bool {
		a, b := itineraries[i], itineraries[j]
		if a.TotalPrice != b.TotalPrice {
			return a.TotalPrice < b.TotalPrice
		}
		return byDuration(a, b)
	})
}

func byDuration(a, b models.Itinerary) bool {
	if a.TotalDurationMs != b.TotalDurationMs {
		return a.TotalDurationMs < b.TotalDurationMs
	}
	if len(a.Segments) != len(b.Segments) {
		return len(a.Segments) < len(b.Segments)
	}
	if a.TotalPrice != b.TotalPrice {
		return a.TotalPrice < b.TotalPrice
	}
	return a.FlightNumbers() < b.FlightNumbers()
}
