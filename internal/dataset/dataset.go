package dataset

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dharmasatrya/skypath/internal/models"
)

//go:embed data/flights.json
var embedded []byte

// EmbeddedSource names the built-in sample data in Dataset.Source.
const EmbeddedSource = "embedded"

// Candidates are tried in order when no explicit path is configured.
var Candidates = []string{
	"flights.json",
	filepath.Join("data", "flights.json"),
	filepath.Join("..", "flights.json"),
}

type Dataset struct {
	Airports []models.Airport `json:"airports"`
	Flights  []models.Flight  `json:"flights"`

	Source   string `json:"-"`
	warnings []string
}

// Warnings lists non-fatal problems found while loading.
func (d *Dataset) Warnings() []string {
	return d.warnings
}

type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return "load " + e.Source + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the dataset at path. With an empty path the Candidates are
// tried relative to the working directory and the embedded sample is used
// when none exists. An explicit path that does not exist is an error.
func Load(path string) (*Dataset, error) {
	if path != "" {
		return loadFile(path)
	}

	for _, candidate := range Candidates {
		_, err := os.Stat(candidate)
		if err == nil {
			return loadFile(candidate)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Source: candidate, Err: err}
		}
	}

	return Parse(embedded, EmbeddedSource)
}

func loadFile(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return Parse(raw, path)
}

// Parse decodes a {"airports": [...], "flights": [...]} document.
func Parse(raw []byte, source string) (*Dataset, error) {
	var d Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	d.Source = source

	if len(d.Airports) == 0 {
		d.warnings = append(d.warnings, "dataset has no airports")
	}
	if len(d.Flights) == 0 {
		d.warnings = append(d.warnings, "dataset has no flights")
	}
	if n := countDuplicateCodes(d.Airports); n > 0 {
		d.warnings = append(d.warnings, fmt.Sprintf("dataset has %d duplicate airport codes; first occurrence wins", n))
	}

	return &d, nil
}

func countDuplicateCodes(airports []models.Airport) int {
	seen := make(map[string]struct{}, len(airports))
	dups := 0
	for _, a := range airports {
		if _, ok := seen[a.Code]; ok {
			dups++
			continue
		}
		seen[a.Code] = struct{}{}
	}
	return dups
}
