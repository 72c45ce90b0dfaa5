package search

import (
	"github.com/dharmasatrya/skypath/internal/layover"
	"github.com/dharmasatrya/skypath/internal/models"
	"github.com/dharmasatrya/skypath/internal/timezone"
	"github.com/dharmasatrya/skypath/pkg/currency"
	"github.com/dharmasatrya/skypath/pkg/duration"
)

// assemble turns a flight sequence into an itinerary. It reports false when
// an endpoint cannot be resolved or the total duration comes out negative;
// such candidates are dropped.
func (e *Engine) assemble(path []models.Flight) (models.Itinerary, bool) {
	if len(path) == 0 {
		return models.Itinerary{}, false
	}

	first, last := path[0], path[len(path)-1]
	departureMs, ok := e.departureMs(first)
	if !ok {
		return models.Itinerary{}, false
	}
	arrivalMs, ok := e.arrivalMs(last)
	if !ok {
		return models.Itinerary{}, false
	}
	total := arrivalMs - departureMs
	if total < 0 {
		return models.Itinerary{}, false
	}

	layovers := make([]models.Layover, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		arr, ok := e.arrivalMs(path[i])
		if !ok {
			return models.Itinerary{}, false
		}
		dep, ok := e.departureMs(path[i+1])
		if !ok {
			return models.Itinerary{}, false
		}
		d := layover.DurationMs(arr, dep)
		layovers = append(layovers, models.Layover{
			Airport:           path[i].Destination,
			DurationMs:        d,
			DurationFormatted: duration.Format(d),
		})
	}

	segments := make([]models.Segment, len(path))
	var price float64
	for i, f := range path {
		segments[i] = e.segment(f)
		price += f.Price
	}

	return models.Itinerary{
		Segments:               segments,
		Layovers:               layovers,
		TotalDurationMs:        total,
		TotalDurationFormatted: duration.Format(total),
		TotalPrice:             price,
		TotalPriceFormatted:    currency.FormatUSD(price),
	}, true
}

// segment computes a flight's own duration; 0 when either end is unresolvable.
func (e *Engine) segment(f models.Flight) models.Segment {
	var d int64
	dep, okDep := e.departureMs(f)
	arr, okArr := e.arrivalMs(f)
	if okDep && okArr {
		d = arr - dep
	}
	return models.Segment{
		Flight:            f,
		DurationMs:        d,
		DurationFormatted: duration.Format(d),
	}
}

func (e *Engine) departureMs(f models.Flight) (int64, bool) {
	return e.instant(f.Origin, f.DepartureTime)
}

func (e *Engine) arrivalMs(f models.Flight) (int64, bool) {
	return e.instant(f.Destination, f.ArrivalTime)
}

func (e *Engine) instant(code, local string) (int64, bool) {
	a, ok := e.Lookup(code)
	if !ok {
		return 0, false
	}
	ms, err := timezone.ResolveInstant(local, a.Timezone)
	if err != nil {
		return 0, false
	}
	return ms, true
}
