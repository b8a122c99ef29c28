// File: methods.go
// Role: Read-only queries over a built Graph.
//
// Determinism:
//   - Codes() returns airport codes sorted ascending.
//   - Outgoing() preserves route insertion order.
package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/airnet/records"
)

// VertexCount returns the number of distinct airports.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.numAirports }

// EdgeCount returns the number of routes.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.numRoutes }

// HasAirport reports whether code is a registered airport.
func (g *Graph) HasAirport(code string) bool {
	_, ok := g.airports[code]

	return ok
}

// Airport returns a copy of the airport registered under code.
// Returns ErrAirportNotFound for an unknown code.
func (g *Graph) Airport(code string) (Airport, error) {
	node, ok := g.airports[code]
	if !ok {
		return Airport{}, fmt.Errorf("%w: %q", ErrAirportNotFound, code)
	}

	return *node, nil
}

// Codes returns every airport code, sorted.
// Complexity: O(A log A).
func (g *Graph) Codes() []string {
	out := make([]string, 0, len(g.airports))
	for code := range g.airports {
		out = append(out, code)
	}
	sort.Strings(out)

	return out
}

// Outgoing returns the live outgoing route list of code, or nil for an
// unknown code or a terminal airport.
//
// The slice is owned by the Graph and must not be modified. It exists for
// the search packages, which walk it on every expansion; use
// Airport(code).Routes() for a private copy.
func (g *Graph) Outgoing(code string) []Route {
	node, ok := g.airports[code]
	if !ok {
		return nil
	}

	return node.routes
}

// Airlines returns a copy of the retained airline records in input order.
func (g *Graph) Airlines() []records.Airline {
	out := make([]records.Airline, len(g.airlines))
	copy(out, g.airlines)

	return out
}

// Airline returns the airline record registered under code.
func (g *Graph) Airline(code string) (records.Airline, bool) {
	i, ok := g.airlineIndex[code]
	if !ok {
		return records.Airline{}, false
	}

	return g.airlines[i], true
}

// Duplicates returns the airport codes that were overwritten during Build,
// once per extra occurrence.
func (g *Graph) Duplicates() []string {
	out := make([]string, len(g.duplicates))
	copy(out, g.duplicates)

	return out
}

// Stats returns a summary of the graph.
// Complexity: O(A + R).
func (g *Graph) Stats() GraphStats {
	s := GraphStats{
		Airports:   g.numAirports,
		Routes:     g.numRoutes,
		Airlines:   len(g.airlines),
		Duplicates: len(g.duplicates),
	}

	inUse := make(map[string]struct{})
	for _, node := range g.airports {
		if len(node.routes) == 0 {
			s.TerminalAirports++
		}
		for i := range node.routes {
			inUse[node.routes[i].Airline] = struct{}{}
		}
	}
	s.AirlinesInUse = len(inUse)

	return s
}

// RoutesByAirline returns a copy of the routes leaving code that are operated
// by airline, in insertion order. Nil for an unknown code.
func (g *Graph) RoutesByAirline(code, airline string) []Route {
	node, ok := g.airports[code]
	if !ok {
		return nil
	}

	var out []Route
	for i := range node.routes {
		if node.routes[i].Airline == airline {
			out = append(out, node.routes[i])
		}
	}

	return out
}
