package timezone

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/skypath/internal/models"
)

func lookupFrom(airports ...models.Airport) AirportLookup {
	byCode := make(map[string]models.Airport, len(airports))
	for _, a := range airports {
		byCode[a.Code] = a
	}
	return func(code string) (models.Airport, bool) {
		a, ok := byCode[code]
		return a, ok
	}
}

func TestResolveInstant_NewYorkDuringEDT(t *testing.T) {
	ms, err := ResolveInstant("2024-03-15T08:30:00", "America/New_York")
	require.NoError(t, err)

	want := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, want.UnixMilli(), ms)
}

func TestResolveInstant_NewYorkDuringEST(t *testing.T) {
	ms, err := ResolveInstant("2024-01-15T08:30:00", "America/New_York")
	require.NoError(t, err)

	want := time.Date(2024, 1, 15, 13, 30, 0, 0, time.UTC)
	assert.Equal(t, want.UnixMilli(), ms)
}

func TestResolveInstant_SameWallClockDifferentZones(t *testing.T) {
	ny, err := ResolveInstant("2024-03-15T08:00:00", "America/New_York")
	require.NoError(t, err)
	tokyo, err := ResolveInstant("2024-03-15T08:00:00", "Asia/Tokyo")
	require.NoError(t, err)

	assert.NotEqual(t, ny, tokyo)
	// Tokyo is UTC+9, New York is UTC-4 on that date.
	assert.Equal(t, int64(13*time.Hour/time.Millisecond), ny-tokyo)
}

func TestResolveInstant_AcceptsMinutePrecision(t *testing.T) {
	ms, err := ResolveInstant("2024-03-15T08:30", "UTC")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC).UnixMilli(), ms)
}

func TestResolveInstant_HonoursExplicitOffset(t *testing.T) {
	ms, err := ResolveInstant("2024-03-15T08:30:00Z", "Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC).UnixMilli(), ms)
}

func TestResolveInstant_DaylightSavingTransitions(t *testing.T) {
	tests := []struct {
		name  string
		value string
		tz    string
		want  time.Time
	}{
		{
			name:  "spring forward gap moves forward",
			value: "2024-03-10T02:30:00",
			tz:    "America/New_York",
			want:  time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC),
		},
		{
			name:  "just before spring forward",
			value: "2024-03-10T01:59:00",
			tz:    "America/New_York",
			want:  time.Date(2024, 3, 10, 6, 59, 0, 0, time.UTC),
		},
		{
			name:  "first minute after spring forward",
			value: "2024-03-10T03:00:00",
			tz:    "America/New_York",
			want:  time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC),
		},
		{
			name:  "afternoon of spring forward day",
			value: "2024-03-10T12:00:00",
			tz:    "America/New_York",
			want:  time.Date(2024, 3, 10, 16, 0, 0, 0, time.UTC),
		},
		{
			name:  "fall back overlap takes first occurrence",
			value: "2024-11-03T01:30:00",
			tz:    "America/New_York",
			want:  time.Date(2024, 11, 3, 5, 30, 0, 0, time.UTC),
		},
		{
			name:  "afternoon of fall back day",
			value: "2024-11-03T12:00:00",
			tz:    "America/New_York",
			want:  time.Date(2024, 11, 3, 17, 0, 0, 0, time.UTC),
		},
		{
			name:  "london gap",
			value: "2024-03-31T01:30:00",
			tz:    "Europe/London",
			want:  time.Date(2024, 3, 31, 1, 30, 0, 0, time.UTC),
		},
		{
			name:  "london overlap",
			value: "2024-10-27T01:30:00",
			tz:    "Europe/London",
			want:  time.Date(2024, 10, 27, 0, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, err := ResolveInstant(tt.value, tt.tz)
			require.NoError(t, err)
			assert.Equal(t, tt.want.UnixMilli(), ms, "got %s", time.UnixMilli(ms).UTC())
		})
	}
}

func TestResolveInstant_DurationAcrossSpringForward(t *testing.T) {
	dep, err := ResolveInstant("2024-03-10T01:00:00", "America/New_York")
	require.NoError(t, err)
	arr, err := ResolveInstant("2024-03-10T04:00:00", "America/New_York")
	require.NoError(t, err)

	assert.Equal(t, int64(2*time.Hour/time.Millisecond), arr-dep)
}

func TestResolveInstant_Errors(t *testing.T) {
	tests := []struct {
		name  string
		value string
		tz    string
	}{
		{name: "garbage timestamp", value: "not-a-date", tz: "America/New_York"},
		{name: "unknown zone", value: "2024-03-15T08:30:00", tz: "Mars/Olympus_Mons"},
		{name: "empty zone", value: "2024-03-15T08:30:00", tz: ""},
		{name: "local zone", value: "2024-03-15T08:30:00", tz: "Local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveInstant(tt.value, tt.tz)
			require.Error(t, err)

			var invalid *InvalidTimeError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.tz, invalid.Timezone)
			assert.Contains(t, err.Error(), "invalid time")
		})
	}
}

func TestLoadLocation_Cached(t *testing.T) {
	first, err := LoadLocation("Europe/London")
	require.NoError(t, err)
	second, err := LoadLocation("Europe/London")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLocalDepartureDate(t *testing.T) {
	lookup := lookupFrom(
		models.Airport{Code: "JFK", Timezone: "America/New_York"},
		models.Airport{Code: "BAD", Timezone: "Nowhere/Nothing"},
	)

	t.Run("late evening stays on local date", func(t *testing.T) {
		date, ok, err := LocalDepartureDate(models.Flight{Origin: "JFK", DepartureTime: "2024-03-15T23:30:00"}, lookup)
		require.NoError(t, err)
		assert.True(t, ok)
		// 23:30 EDT is already 2024-03-16 in UTC.
		assert.Equal(t, "2024-03-15", date)
	})

	t.Run("unknown origin", func(t *testing.T) {
		date, ok, err := LocalDepartureDate(models.Flight{Origin: "XXX", DepartureTime: "2024-03-15T08:00:00"}, lookup)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, date)
	})

	t.Run("invalid zone", func(t *testing.T) {
		_, ok, err := LocalDepartureDate(models.Flight{Origin: "BAD", DepartureTime: "2024-03-15T08:00:00"}, lookup)
		assert.False(t, ok)
		var invalid *InvalidTimeError
		assert.ErrorAs(t, err, &invalid)
	})
}

func TestNextDate(t *testing.T) {
	tests := map[string]string{
		"2024-03-15": "2024-03-16",
		"2024-02-28": "2024-02-29",
		"2023-02-28": "2023-03-01",
		"2024-12-31": "2025-01-01",
		"2024-03-10": "2024-03-11",
	}
	for in, want := range tests {
		got, err := NextDate(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	_, err := NextDate("15/03/2024")
	assert.Error(t, err)
}
