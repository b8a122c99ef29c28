// Package core defines the flight network Graph, its Airport vertices and
// Route edges, and the Build constructor that ingests loader records.
//
// This file declares Airport, Route, Graph, BuildOption, the typed
// UnknownAirportError, and sentinel errors.
//
// Errors:
//
//	ErrEmptyCode        - airport or route endpoint code is the empty string.
//	ErrUnknownAirport   - a route references an airport that was never inserted.
//	ErrDuplicateAirport - an airport code was inserted twice (strict mode only).
//	ErrAirportNotFound  - a lookup referenced a code absent from the graph.
//	ErrNegativeWeight   - a route carries a negative distance or time.
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/airnet/records"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyCode indicates an airport or route endpoint with an empty code.
	ErrEmptyCode = errors.New("core: airport code is empty")

	// ErrUnknownAirport indicates a route whose endpoint is not a registered airport.
	// Returned wrapped in *UnknownAirportError.
	ErrUnknownAirport = errors.New("core: route references unknown airport")

	// ErrDuplicateAirport indicates an airport code inserted more than once
	// while WithStrictAirports is in effect.
	ErrDuplicateAirport = errors.New("core: duplicate airport code")

	// ErrAirportNotFound indicates a query or lookup for a code the graph does not hold.
	ErrAirportNotFound = errors.New("core: airport not found")

	// ErrNegativeWeight indicates a route with a negative distance or time.
	ErrNegativeWeight = errors.New("core: negative route weight")
)

// UnknownAirportError reports the route that could not be attached.
// It matches ErrUnknownAirport under errors.Is.
type UnknownAirportError struct {
	// RouteIndex is the position of the offending route in the Build input.
	RouteIndex int

	// Code is the airport code that was not found.
	Code string

	// Destination is true when the missing code is the route's destination
	// (only checked under WithStrictDestinations).
	Destination bool
}

// Error implements error.
func (e *UnknownAirportError) Error() string {
	end := "source"
	if e.Destination {
		end = "destination"
	}

	return fmt.Sprintf("core: route %d: unknown %s airport %q", e.RouteIndex, end, e.Code)
}

// Unwrap lets errors.Is match ErrUnknownAirport.
func (e *UnknownAirportError) Unwrap() error { return ErrUnknownAirport }

// Route is a directed, airline-tagged edge between two airports.
//
// ID is the route's position in the Build input and is unique within a Graph,
// so two otherwise identical routes remain distinct edges of the multigraph.
type Route struct {
	// ID uniquely identifies this route in the Graph.
	ID int

	// Airline is the operating airline code.
	Airline string

	// From is the source airport code.
	From string

	// To is the destination airport code.
	To string

	// Distance is the static distance weight.
	Distance float64

	// Time is the static travel time weight.
	Time float64
}

// Airport is a vertex of the network. It exclusively owns its outgoing routes.
type Airport struct {
	Code      string
	Name      string
	City      string
	Country   string
	Latitude  float64
	Longitude float64

	routes []Route // outgoing, in insertion order
}

// Routes returns a copy of the airport's outgoing routes in insertion order.
func (a *Airport) Routes() []Route {
	out := make([]Route, len(a.routes))
	copy(out, a.routes)

	return out
}

// RouteCount returns the number of outgoing routes.
func (a *Airport) RouteCount() int { return len(a.routes) }

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	strictAirports     bool                         // duplicate airport codes are fatal
	strictDestinations bool                         // unknown destination codes are fatal
	onDuplicate        func(code string, index int) // notified on each duplicate code
}

// WithStrictAirports makes a duplicate airport code a fatal ErrDuplicateAirport
// instead of a last-write-wins overwrite.
func WithStrictAirports() BuildOption {
	return func(c *buildConfig) { c.strictAirports = true }
}

// WithStrictDestinations requires every route destination to be a registered
// airport. By default only the source is checked.
func WithStrictDestinations() BuildOption {
	return func(c *buildConfig) { c.strictDestinations = true }
}

// WithOnDuplicate registers fn to be called with the code and input index of
// every duplicate airport record, before it overwrites the earlier one.
func WithOnDuplicate(fn func(code string, index int)) BuildOption {
	return func(c *buildConfig) {
		if fn != nil {
			c.onDuplicate = fn
		}
	}
}

// Graph is the in-memory flight network.
//
// A Graph is populated once by Build and is read-only afterwards, so any
// number of goroutines may query it concurrently without locking.
type Graph struct {
	airports map[string]*Airport // code → vertex

	airlines     []records.Airline // retained for reference
	airlineIndex map[string]int    // airline code → index in airlines

	numAirports int      // distinct airport codes inserted
	numRoutes   int      // routes attached
	duplicates  []string // codes seen more than once, in order of detection
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	Airports         int // vertex count
	Routes           int // edge count
	Airlines         int // airline records retained
	AirlinesInUse    int // distinct airline codes appearing on routes
	TerminalAirports int // airports with no outgoing route
	Duplicates       int // duplicate airport codes overwritten during Build
}
