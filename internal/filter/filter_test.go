package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dharmasatrya/skypath/internal/models"
)

type leg struct {
	number  string
	airline string
}

func itinerary(durationMs int64, price float64, legs ...leg) models.Itinerary {
	it := models.Itinerary{TotalDurationMs: durationMs, TotalPrice: price}
	for _, l := range legs {
		it.Segments = append(it.Segments, models.Segment{
			Flight: models.Flight{FlightNumber: l.number, Airline: l.airline},
		})
	}
	return it
}

func fixture() []models.Itinerary {
	return []models.Itinerary{
		itinerary(7_200_000, 100, leg{"SP1", "SkyPath Airways"}),
		itinerary(9_000_000, 125, leg{"SP2", "SkyPath Airways"}, leg{"SP3", "Blue Jet"}),
		itinerary(14_400_000, 80, leg{"SP4", "Blue Jet"}, leg{"SP5", "Blue Jet"}, leg{"SP6", "Blue Jet"}),
	}
}

func flightNumbers(its []models.Itinerary) []string {
	out := make([]string, 0, len(its))
	for _, it := range its {
		out = append(out, it.FlightNumbers())
	}
	return out
}

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		filters *models.SearchFilters
		sortBy  string
		want    []string
	}{
		{
			name: "no filters keeps everything in duration order",
			want: []string{"SP1", "SP2/SP3", "SP4/SP5/SP6"},
		},
		{
			name:    "direct only",
			filters: &models.SearchFilters{MaxStops: intPtr(0)},
			want:    []string{"SP1"},
		},
		{
			name:    "up to one stop",
			filters: &models.SearchFilters{MaxStops: intPtr(1)},
			want:    []string{"SP1", "SP2/SP3"},
		},
		{
			name:    "max price is inclusive",
			filters: &models.SearchFilters{MaxPrice: floatPtr(100)},
			want:    []string{"SP1", "SP4/SP5/SP6"},
		},
		{
			name:    "airline must cover every segment",
			filters: &models.SearchFilters{Airlines: []string{"blue jet"}},
			want:    []string{"SP4/SP5/SP6"},
		},
		{
			name:    "several airlines",
			filters: &models.SearchFilters{Airlines: []string{"SkyPath Airways", " Blue Jet "}},
			want:    []string{"SP1", "SP2/SP3", "SP4/SP5/SP6"},
		},
		{
			name:   "sort by price",
			sortBy: models.SortByPrice,
			want:   []string{"SP4/SP5/SP6", "SP1", "SP2/SP3"},
		},
		{
			name:    "nothing matches",
			filters: &models.SearchFilters{MaxPrice: floatPtr(10)},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(fixture(), tt.filters, tt.sortBy)
			assert.Equal(t, tt.want, flightNumbers(got))
		})
	}
}

func TestApply_DoesNotReorderInput(t *testing.T) {
	input := fixture()
	input[0], input[2] = input[2], input[0]

	Apply(input, nil, models.SortByDuration)

	assert.Equal(t, "SP4/SP5/SP6", input[0].FlightNumbers())
}
