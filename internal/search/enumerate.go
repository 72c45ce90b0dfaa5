package search

import (
	"github.com/dharmasatrya/skypath/internal/layover"
	"github.com/dharmasatrya/skypath/internal/models"
	"github.com/dharmasatrya/skypath/internal/timezone"
)

// MaxConnections bounds the number of intermediate airports on a path.
const MaxConnections = 2

type pathSearch struct {
	engine      *Engine
	destination string
	date        string
	found       [][]models.Flight
}

// enumerate collects every flight sequence that starts at origin on date,
// ends at destination and respects the connection rules. The first leg must
// depart on date; later legs may depart on date or the day after.
func (e *Engine) enumerate(origin, destination, date string) ([][]models.Flight, error) {
	s := &pathSearch{engine: e, destination: destination, date: date}

	for _, first := range e.index.FlightsDepartingFrom(origin, date, false) {
		if err := s.extend([]models.Flight{first}, 0); err != nil {
			return nil, err
		}
	}

	return s.found, nil
}

func (s *pathSearch) extend(path []models.Flight, connections int) error {
	last := path[len(path)-1]
	if last.Destination == s.destination {
		s.found = append(s.found, path)
		return nil
	}
	if connections == MaxConnections {
		return nil
	}

	// A connection airport missing from the data prunes the branch.
	via, ok := s.engine.Lookup(last.Destination)
	if !ok {
		return nil
	}
	arrivalMs, err := timezone.ResolveInstant(last.ArrivalTime, via.Timezone)
	if err != nil {
		return err
	}
	arrivingCountry := s.engine.country(last.Origin)

	for _, next := range s.engine.index.FlightsDepartingFrom(via.Code, s.date, true) {
		if connections+1 == MaxConnections && next.Destination != s.destination {
			continue
		}

		departureMs, err := timezone.ResolveInstant(next.DepartureTime, via.Timezone)
		if err != nil {
			return err
		}
		if !layover.IsValid(arrivalMs, departureMs, arrivingCountry, s.engine.country(next.Destination)) {
			continue
		}

		extended := make([]models.Flight, len(path), len(path)+1)
		copy(extended, path)
		if err := s.extend(append(extended, next), connections+1); err != nil {
			return err
		}
	}

	return nil
}

// country returns "" for unknown airports, which makes any layover they
// flank international.
func (e *Engine) country(code string) string {
	a, ok := e.Lookup(code)
	if !ok {
		return ""
	}
	return a.Country
}
