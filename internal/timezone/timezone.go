package timezone

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dharmasatrya/skypath/internal/models"
)

// Wall-clock layouts accepted for dataset timestamps. None of them carries an
// offset, so the value is read in the airport's zone.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var errEmptyZone = errors.New("empty timezone")

// InvalidTimeError reports a timestamp or zone that cannot be resolved to an
// instant. It points at broken reference data, not at a bad request.
type InvalidTimeError struct {
	Value    string
	Timezone string
	Err      error
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time: %s in %s: %v", e.Value, e.Timezone, e.Err)
}

func (e *InvalidTimeError) Unwrap() error {
	return e.Err
}

// AirportLookup resolves an airport code to its record.
type AirportLookup func(code string) (models.Airport, bool)

var locations sync.Map

// LoadLocation is time.LoadLocation with a process-wide cache. The empty name
// and "Local" are rejected so that a missing zone never silently means UTC or
// the host zone.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return nil, errEmptyZone
	}
	if loc, ok := locations.Load(name); ok {
		return loc.(*time.Location), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	actual, _ := locations.LoadOrStore(name, loc)
	return actual.(*time.Location), nil
}

// ParseLocal reads a wall-clock timestamp in the given zone. A timestamp that
// carries its own offset is honoured as written.
func ParseLocal(value, tz string) (time.Time, error) {
	loc, err := LoadLocation(tz)
	if err != nil {
		return time.Time{}, &InvalidTimeError{Value: value, Timezone: tz, Err: err}
	}

	value = strings.TrimSpace(value)
	for _, layout := range localLayouts {
		if wall, err := time.Parse(layout, value); err == nil {
			return fromWallClock(wall, loc), nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.In(loc), nil
	}

	return time.Time{}, &InvalidTimeError{
		Value:    value,
		Timezone: tz,
		Err:      &time.ParseError{Value: value, Message: ": unable to parse time string"},
	}
}

// fromWallClock places the wall clock carried by wall (read as UTC fields) in
// loc. A repeated wall clock resolves to its first occurrence. A wall clock
// skipped by a forward transition is read with the offset in force before the
// transition, which moves it forward by the length of the gap.
func fromWallClock(wall time.Time, loc *time.Location) time.Time {
	t := time.Date(wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), loc)

	_, before := t.Add(-24 * time.Hour).Zone()
	_, after := t.Add(24 * time.Hour).Zone()

	earlier := wall.Add(-time.Duration(before) * time.Second).In(loc)
	if sameWallClock(earlier, wall) {
		return earlier
	}
	later := wall.Add(-time.Duration(after) * time.Second).In(loc)
	if sameWallClock(later, wall) {
		return later
	}
	return earlier
}

func sameWallClock(t, wall time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := wall.Date()
	return y1 == y2 && m1 == m2 && d1 == d2 &&
		t.Hour() == wall.Hour() && t.Minute() == wall.Minute() &&
		t.Second() == wall.Second() && t.Nanosecond() == wall.Nanosecond()
}

// ResolveInstant returns the absolute instant, in milliseconds since the Unix
// epoch, of a wall-clock timestamp interpreted in the IANA zone tz.
func ResolveInstant(value, tz string) (int64, error) {
	t, err := ParseLocal(value, tz)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// LocalDepartureDate returns the departure calendar date of f in its origin
// airport's zone. ok is false when the origin airport is unknown.
func LocalDepartureDate(f models.Flight, lookup AirportLookup) (date string, ok bool, err error) {
	origin, found := lookup(f.Origin)
	if !found {
		return "", false, nil
	}
	t, err := ParseLocal(f.DepartureTime, origin.Timezone)
	if err != nil {
		return "", false, err
	}
	return t.Format(models.DateLayout), true, nil
}

// NextDate returns the calendar day after date. Day arithmetic is done in UTC
// for every airport.
func NextDate(date string) (string, error) {
	d, err := time.ParseInLocation(models.DateLayout, date, time.UTC)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, 1).Format(models.DateLayout), nil
}
