package index

import (
	"github.com/dharmasatrya/skypath/internal/models"
	"github.com/dharmasatrya/skypath/internal/timezone"
)

// Report counts what happened to each flight during Build.
type Report struct {
	Indexed       int `json:"indexed"`
	UnknownOrigin int `json:"unknownOrigin"`
	InvalidTime   int `json:"invalidTime"`
}

// Index groups flights by the local calendar date of departure at their
// origin, and by origin within a date. It is read-only after Build and safe
// for concurrent use.
type Index struct {
	byDate   map[string][]models.Flight
	byOrigin map[string]map[string][]models.Flight
	report   Report
}

// Build indexes flights. Flights whose origin is unknown or whose departure
// time cannot be resolved are left out and counted in the report.
func Build(flights []models.Flight, lookup timezone.AirportLookup) *Index {
	idx := &Index{
		byDate:   make(map[string][]models.Flight),
		byOrigin: make(map[string]map[string][]models.Flight),
	}

	for _, f := range flights {
		date, ok, err := timezone.LocalDepartureDate(f, lookup)
		if err != nil {
			idx.report.InvalidTime++
			continue
		}
		if !ok {
			idx.report.UnknownOrigin++
			continue
		}

		idx.byDate[date] = append(idx.byDate[date], f)
		origins, exists := idx.byOrigin[date]
		if !exists {
			origins = make(map[string][]models.Flight)
			idx.byOrigin[date] = origins
		}
		origins[f.Origin] = append(origins[f.Origin], f)
		idx.report.Indexed++
	}

	return idx
}

func (idx *Index) Report() Report {
	return idx.report
}

// Dates returns the number of distinct departure dates held.
func (idx *Index) Dates() int {
	return len(idx.byDate)
}

// FlightsOn returns every flight departing on date, in input order.
func (idx *Index) FlightsOn(date string) []models.Flight {
	return clone(idx.byDate[date])
}

// FlightsDepartingFrom returns the flights leaving code on date. With
// includeNextDay the flights of the following calendar day are appended.
func (idx *Index) FlightsDepartingFrom(code, date string, includeNextDay bool) []models.Flight {
	out := clone(idx.byOrigin[date][code])
	if !includeNextDay {
		return out
	}

	next, err := timezone.NextDate(date)
	if err != nil {
		return out
	}
	return append(out, idx.byOrigin[next][code]...)
}

func clone(flights []models.Flight) []models.Flight {
	if len(flights) == 0 {
		return nil
	}
	out := make([]models.Flight, len(flights))
	copy(out, flights)
	return out
}
