// Package core provides the in-memory flight network: a directed multigraph
// whose vertices are airports keyed by code and whose edges are airline routes
// carrying two independent, non-negative weights (distance and time).
//
// Representation:
//
//	airports[code] = *Airport{attributes..., routes: []Route}
//
// Each Airport exclusively owns its outgoing route list. There are no
// back-pointers: every search in this module walks edges forward only.
// Parallel routes between the same pair of airports are kept, and each
// carries a unique Route.ID (its index in the Build input).
//
// Lifecycle:
//
//	g, err := core.Build(airports, routes, airlines)
//
// Build inserts all airports, then all routes. A route whose source code was
// never registered is a fatal *UnknownAirportError: no partially built Graph
// is returned. Duplicate airport codes overwrite earlier attributes and are
// surfaced through Duplicates(), WithOnDuplicate, or made fatal by
// WithStrictAirports. After Build the Graph is never mutated, which is what
// makes concurrent queries safe without locks.
//
// Counts:
//
//	VertexCount() int // O(1), counter maintained on insert
//	EdgeCount() int   // O(1), counter maintained on insert
//	Stats() GraphStats
//
// Queries:
//
//	HasAirport(code) bool
//	Airport(code) (Airport, error) // ErrAirportNotFound
//	Codes() []string               // sorted
//	Outgoing(code) []Route         // live, read-only
//	Airline(code) (records.Airline, bool)
//
// Search algorithms live in sibling packages: dfs and bfs (airline-restricted
// reachability) and dijkstra (minimum distance or time over all airlines).
package core
