// Package records defines the immutable input records of the flight network
// (aircraft, airlines, airports, routes) and decodes them from the
// semicolon-delimited reference files.
//
// Records are plain values: every field is named and typed and fixed once the
// decoder has produced the value. The engine in package core consumes
// []Airport, []Route and []Airline; Aircraft records are loaded for reporting
// only.
package records

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for record decoding.
var (
	// ErrMalformedRecord indicates a line that could not be split or converted
	// into the typed fields of its record.
	ErrMalformedRecord = errors.New("records: malformed record")

	// ErrInvalidRecord indicates a decoded record that violates a field constraint
	// (empty code, out-of-range coordinate, negative weight).
	ErrInvalidRecord = errors.New("records: invalid record")

	// ErrMissingFile indicates that a configured input file does not exist.
	ErrMissingFile = errors.New("records: input file not found")
)

// Aircraft describes an aircraft type.
type Aircraft struct {
	Code     string `csv:"code" validate:"required"`
	Name     string `csv:"name"`
	Category string `csv:"category"`
}

// Airline describes an operating carrier. The code is what routes refer to.
type Airline struct {
	Code    string `csv:"code" validate:"required"`
	Name    string `csv:"name"`
	Country string `csv:"country"`
}

// Airport describes a vertex of the network.
type Airport struct {
	Code      string  `csv:"code" validate:"required"`
	Name      string  `csv:"name"`
	City      string  `csv:"city"`
	Country   string  `csv:"country"`
	Latitude  float64 `csv:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `csv:"longitude" validate:"gte=-180,lte=180"`
}

// Route describes a directed, airline-tagged connection between two airports.
// Distance and Time are independent static weights.
type Route struct {
	Airline     string  `csv:"airline" validate:"required"`
	Source      string  `csv:"source" validate:"required"`
	Destination string  `csv:"destination" validate:"required"`
	Distance    float64 `csv:"distance" validate:"gte=0"`
	Time        float64 `csv:"time" validate:"gte=0"`
}

// Dataset bundles every record kind read from one data directory.
type Dataset struct {
	Aircraft []Aircraft
	Airlines []Airline
	Airports []Airport
	Routes   []Route
}

// Positional headers of each file. The header line present in the files
// themselves is skipped and never used for field mapping.
var (
	aircraftHeader = []string{"code", "name", "category"}
	airlineHeader  = []string{"code", "name", "country"}
	airportHeader  = []string{"code", "name", "city", "country", "latitude", "longitude"}
	routeHeader    = []string{"airline", "source", "destination", "distance", "time"}
)

var validate = validator.New()
