package models

import (
	"regexp"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type SearchFilters struct {
	MaxStops *int     `json:"maxStops,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	Airlines []string `json:"airlines,omitempty"`
}

func (f *SearchFilters) IsEmpty() bool {
	return f == nil || (f.MaxStops == nil && f.MaxPrice == nil && len(f.Airlines) == 0)
}

type SearchRequest struct {
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Date        string         `json:"date"`
	Filters     *SearchFilters `json:"filters,omitempty"`
	SortBy      string         `json:"sortBy,omitempty"`
}

// Normalize upper-cases airport codes and trims every field.
func (r *SearchRequest) Normalize() {
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
	r.Date = strings.TrimSpace(r.Date)
	r.SortBy = strings.ToLower(strings.TrimSpace(r.SortBy))
}

// Validate checks request shape only; airport existence is checked by the
// caller against the engine.
func (r *SearchRequest) Validate() error {
	if r.Origin == "" || r.Destination == "" {
		return ErrMissingEndpoints
	}
	if r.Origin == r.Destination {
		return ErrSameEndpoints
	}
	if !datePattern.MatchString(r.Date) {
		return ErrInvalidDate
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	if r.SortBy == "" {
		r.SortBy = SortByDuration
	}
	if r.SortBy != SortByDuration && r.SortBy != SortByPrice {
		return ErrInvalidSort
	}
	if r.Filters != nil {
		if r.Filters.MaxStops != nil && (*r.Filters.MaxStops < 0 || *r.Filters.MaxStops > 2) {
			return ErrInvalidMaxStops
		}
		if r.Filters.MaxPrice != nil && *r.Filters.MaxPrice < 0 {
			return ErrInvalidMaxPrice
		}
	}
	return nil
}

func (r SearchRequest) Key() SearchKey {
	return SearchKey{Origin: r.Origin, Destination: r.Destination, Date: r.Date}
}

// SearchKey identifies an engine query; filters and sort are applied on top
// of the engine result and are not part of it.
type SearchKey struct {
	Origin      string
	Destination string
	Date        string
}

const (
	SortByDuration = "duration"
	SortByPrice    = "price"
)

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingEndpoints ValidationError = "Origin and destination are required."
	ErrSameEndpoints    ValidationError = "Origin and destination must be different."
	ErrInvalidDate      ValidationError = "Date must be in YYYY-MM-DD format."
	ErrInvalidSort      ValidationError = "sort must be one of: duration, price."
	ErrInvalidMaxStops  ValidationError = "maxStops must be an integer between 0 and 2."
	ErrInvalidMaxPrice  ValidationError = "maxPrice must be a non-negative number."
)
