// File: build.go
// Role: Graph construction from loader records.
//
// Policy:
//   - Airports are inserted before routes.
//   - Any construction error aborts Build; no partially built Graph escapes.
//   - Counters are maintained on insert, never derived by traversal.
package core

import (
	"fmt"

	"github.com/katalvlaran/airnet/records"
)

// Build constructs a Graph from airport, route and airline records.
//
// Implementation:
//   - Stage 1: Apply BuildOptions.
//   - Stage 2: Insert every airport keyed by code. A repeated code overwrites
//     the earlier attributes (last write wins), keeps the node's outgoing list,
//     is recorded in Duplicates() and reported to WithOnDuplicate.
//   - Stage 3: Append every route to its source airport's outgoing list.
//   - Stage 4: Retain the airline records for reference lookups.
//
// Errors:
//   - ErrEmptyCode if an airport or route endpoint code is empty.
//   - ErrDuplicateAirport for a repeated code under WithStrictAirports.
//   - *UnknownAirportError (ErrUnknownAirport) if a route source is not registered,
//     or its destination under WithStrictDestinations.
//   - ErrNegativeWeight if a route has negative distance or time.
//
// Complexity:
//   - Time O(A + R + L), Space O(A + R + L) for A airports, R routes, L airlines.
func Build(airports []records.Airport, routes []records.Route, airlines []records.Airline, opts ...BuildOption) (*Graph, error) {
	// 1) Options
	var cfg buildConfig
	var opt BuildOption
	for _, opt = range opts {
		opt(&cfg)
	}

	g := &Graph{
		airports:     make(map[string]*Airport, len(airports)),
		airlineIndex: make(map[string]int, len(airlines)),
	}

	// 2) Vertices
	var err error
	for i := range airports {
		if err = g.addAirport(i, airports[i], &cfg); err != nil {
			return nil, err
		}
	}

	// 3) Edges
	for i := range routes {
		if err = g.addRoute(i, routes[i], &cfg); err != nil {
			return nil, err
		}
	}

	// 4) Airlines, first record wins for lookups
	g.airlines = make([]records.Airline, len(airlines))
	copy(g.airlines, airlines)
	for i, al := range g.airlines {
		if _, seen := g.airlineIndex[al.Code]; !seen {
			g.airlineIndex[al.Code] = i
		}
	}

	return g, nil
}

// addAirport registers rec under its code. The vertex counter only grows
// for codes not seen before.
func (g *Graph) addAirport(index int, rec records.Airport, cfg *buildConfig) error {
	if rec.Code == "" {
		return fmt.Errorf("%w: airport record %d", ErrEmptyCode, index)
	}

	node, exists := g.airports[rec.Code]
	if exists {
		if cfg.strictAirports {
			return fmt.Errorf("%w: %q at airport record %d", ErrDuplicateAirport, rec.Code, index)
		}
		g.duplicates = append(g.duplicates, rec.Code)
		if cfg.onDuplicate != nil {
			cfg.onDuplicate(rec.Code, index)
		}
	} else {
		node = &Airport{}
		g.airports[rec.Code] = node
		g.numAirports++
	}

	node.Code = rec.Code
	node.Name = rec.Name
	node.City = rec.City
	node.Country = rec.Country
	node.Latitude = rec.Latitude
	node.Longitude = rec.Longitude

	return nil
}

// addRoute appends rec to the outgoing list of its source airport.
func (g *Graph) addRoute(index int, rec records.Route, cfg *buildConfig) error {
	if rec.Source == "" || rec.Destination == "" {
		return fmt.Errorf("%w: route %d", ErrEmptyCode, index)
	}
	if !(rec.Distance >= 0) || !(rec.Time >= 0) { // also rejects NaN
		return fmt.Errorf("%w: route %d %s→%s distance=%g time=%g",
			ErrNegativeWeight, index, rec.Source, rec.Destination, rec.Distance, rec.Time)
	}

	src, ok := g.airports[rec.Source]
	if !ok {
		return &UnknownAirportError{RouteIndex: index, Code: rec.Source}
	}
	if cfg.strictDestinations {
		if _, ok = g.airports[rec.Destination]; !ok {
			return &UnknownAirportError{RouteIndex: index, Code: rec.Destination, Destination: true}
		}
	}

	src.routes = append(src.routes, Route{
		ID:       index,
		Airline:  rec.Airline,
		From:     rec.Source,
		To:       rec.Destination,
		Distance: rec.Distance,
		Time:     rec.Time,
	})
	g.numRoutes++

	return nil
}
