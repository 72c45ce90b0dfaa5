package search

import (
	"strings"

	"github.com/dharmasatrya/skypath/internal/index"
	"github.com/dharmasatrya/skypath/internal/models"
	"github.com/dharmasatrya/skypath/internal/ranking"
)

// Stats describes the data an Engine was built from.
type Stats struct {
	Airports int          `json:"airports"`
	Flights  int          `json:"flights"`
	Dates    int          `json:"dates"`
	Index    index.Report `json:"index"`
}

// Engine answers itinerary queries over a fixed set of airports and flights.
// All state is built in New and never mutated afterwards, so an Engine is
// safe for concurrent use.
type Engine struct {
	airports []models.Airport
	byCode   map[string]models.Airport
	index    *index.Index
	flights  int
}

func New(airports []models.Airport, flights []models.Flight) *Engine {
	e := &Engine{
		airports: make([]models.Airport, len(airports)),
		byCode:   make(map[string]models.Airport, len(airports)),
		flights:  len(flights),
	}
	copy(e.airports, airports)

	for _, a := range airports {
		code := normalizeCode(a.Code)
		if _, dup := e.byCode[code]; dup {
			continue
		}
		a.Code = code
		e.byCode[code] = a
	}

	normalized := make([]models.Flight, len(flights))
	for i, f := range flights {
		f.Origin = normalizeCode(f.Origin)
		f.Destination = normalizeCode(f.Destination)
		normalized[i] = f
	}
	e.index = index.Build(normalized, e.Lookup)

	return e
}

// Airports returns the airports in load order.
func (e *Engine) Airports() []models.Airport {
	out := make([]models.Airport, len(e.airports))
	copy(out, e.airports)
	return out
}

// Lookup finds an airport by code, ignoring case and surrounding space.
func (e *Engine) Lookup(code string) (models.Airport, bool) {
	a, ok := e.byCode[normalizeCode(code)]
	return a, ok
}

func (e *Engine) Stats() Stats {
	return Stats{
		Airports: len(e.byCode),
		Flights:  e.flights,
		Dates:    e.index.Dates(),
		Index:    e.index.Report(),
	}
}

// Search returns every direct, one-stop and two-stop itinerary from origin
// to destination departing on date (local to origin), ordered by total
// travel time. Unknown airports or origin == destination give an empty
// result. The only error is a *timezone.InvalidTimeError raised by broken
// reference data.
func (e *Engine) Search(origin, destination, date string) ([]models.Itinerary, error) {
	origin, destination = normalizeCode(origin), normalizeCode(destination)
	if origin == destination {
		return []models.Itinerary{}, nil
	}
	if _, ok := e.byCode[origin]; !ok {
		return []models.Itinerary{}, nil
	}
	if _, ok := e.byCode[destination]; !ok {
		return []models.Itinerary{}, nil
	}

	paths, err := e.enumerate(origin, destination, date)
	if err != nil {
		return nil, err
	}

	results := make([]models.Itinerary, 0, len(paths))
	for _, p := range paths {
		if revisitsOrigin(p, origin) {
			continue
		}
		it, ok := e.assemble(p)
		if !ok {
			continue
		}
		results = append(results, it)
	}

	ranking.Sort(results)
	return results, nil
}

func revisitsOrigin(path []models.Flight, origin string) bool {
	for _, f := range path {
		if f.Destination == origin {
			return true
		}
	}
	return false
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
