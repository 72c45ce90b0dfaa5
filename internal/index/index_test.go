package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/skypath/internal/models"
)

func lookup(code string) (models.Airport, bool) {
	airports := map[string]models.Airport{
		"JFK": {Code: "JFK", Country: "US", Timezone: "America/New_York"},
		"LAX": {Code: "LAX", Country: "US", Timezone: "America/Los_Angeles"},
		"NRT": {Code: "NRT", Country: "JP", Timezone: "Asia/Tokyo"},
		"BRK": {Code: "BRK", Country: "XX", Timezone: "Broken/Zone"},
	}
	a, ok := airports[code]
	return a, ok
}

func flight(number, origin, destination, departure string) models.Flight {
	return models.Flight{
		FlightNumber:  number,
		Airline:       "SkyPath",
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departure,
		ArrivalTime:   departure,
		Price:         100,
	}
}

func TestBuild_GroupsByLocalDepartureDate(t *testing.T) {
	idx := Build([]models.Flight{
		flight("SP1", "JFK", "LAX", "2024-03-15T08:00:00"),
		// 23:30 in New York is the 16th in UTC but the 15th locally.
		flight("SP2", "JFK", "NRT", "2024-03-15T23:30:00"),
		flight("SP3", "LAX", "JFK", "2024-03-16T07:00:00"),
		flight("SP4", "NRT", "LAX", "2024-03-16T01:00:00"),
	}, lookup)

	on15 := idx.FlightsOn("2024-03-15")
	require.Len(t, on15, 2)
	assert.Equal(t, "SP1", on15[0].FlightNumber)
	assert.Equal(t, "SP2", on15[1].FlightNumber)

	on16 := idx.FlightsOn("2024-03-16")
	require.Len(t, on16, 2)
	assert.Equal(t, 2, idx.Dates())
	assert.Equal(t, Report{Indexed: 4}, idx.Report())
}

func TestBuild_SkipsUnknownOriginAndInvalidTimes(t *testing.T) {
	idx := Build([]models.Flight{
		flight("SP1", "JFK", "LAX", "2024-03-15T08:00:00"),
		flight("SP2", "XXX", "LAX", "2024-03-15T08:00:00"),
		flight("SP3", "JFK", "LAX", "yesterday"),
		flight("SP4", "BRK", "LAX", "2024-03-15T08:00:00"),
	}, lookup)

	assert.Len(t, idx.FlightsOn("2024-03-15"), 1)
	assert.Equal(t, Report{Indexed: 1, UnknownOrigin: 1, InvalidTime: 2}, idx.Report())
}

func TestFlightsDepartingFrom(t *testing.T) {
	idx := Build([]models.Flight{
		flight("SP1", "JFK", "LAX", "2024-03-15T08:00:00"),
		flight("SP2", "LAX", "JFK", "2024-03-15T09:00:00"),
		flight("SP3", "JFK", "NRT", "2024-03-16T10:00:00"),
		flight("SP4", "JFK", "NRT", "2024-03-17T10:00:00"),
	}, lookup)

	t.Run("same day only", func(t *testing.T) {
		got := idx.FlightsDepartingFrom("JFK", "2024-03-15", false)
		require.Len(t, got, 1)
		assert.Equal(t, "SP1", got[0].FlightNumber)
	})

	t.Run("with next day", func(t *testing.T) {
		got := idx.FlightsDepartingFrom("JFK", "2024-03-15", true)
		require.Len(t, got, 2)
		assert.Equal(t, "SP1", got[0].FlightNumber)
		assert.Equal(t, "SP3", got[1].FlightNumber)
	})

	t.Run("nothing departing", func(t *testing.T) {
		assert.Empty(t, idx.FlightsDepartingFrom("NRT", "2024-03-15", true))
		assert.Empty(t, idx.FlightsDepartingFrom("JFK", "2030-01-01", false))
	})
}

func TestFlightsOn_ReturnsCopy(t *testing.T) {
	idx := Build([]models.Flight{flight("SP1", "JFK", "LAX", "2024-03-15T08:00:00")}, lookup)

	got := idx.FlightsOn("2024-03-15")
	got[0].FlightNumber = "MUTATED"

	assert.Equal(t, "SP1", idx.FlightsOn("2024-03-15")[0].FlightNumber)
	assert.Equal(t, "SP1", idx.FlightsDepartingFrom("JFK", "2024-03-15", false)[0].FlightNumber)
}
