package airnet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/airnet/bfs"
	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/dfs"
	"github.com/katalvlaran/airnet/dijkstra"
	"github.com/katalvlaran/airnet/records"
)

// ErrUnknownOrder indicates an Order other than DepthFirst or BreadthFirst.
var ErrUnknownOrder = errors.New("airnet: unknown search order")

// Order selects the frontier discipline of a reachability search.
type Order int

const (
	// DepthFirst explores with a stack (LIFO).
	DepthFirst Order = iota

	// BreadthFirst explores with a queue (FIFO).
	BreadthFirst
)

// String returns "dfs" or "bfs".
func (o Order) String() string {
	switch o {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps "dfs"/"depth" and "bfs"/"breadth" (any case) to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs", "depth":
		return DepthFirst, nil
	case "bfs", "breadth":
		return BreadthFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
	}
}

// SearchOption configures IsConnected independently of the chosen Order.
type SearchOption func(*searchOptions)

type searchOptions struct {
	ctx     context.Context
	onVisit func(core.Route) error
}

// WithContext sets the cancellation context of a reachability search.
func WithContext(ctx context.Context) SearchOption {
	return func(o *searchOptions) { o.ctx = ctx }
}

// WithOnVisit registers fn to be called on every route taken off the frontier.
// A non-nil return aborts the search with that error wrapped.
func WithOnVisit(fn func(core.Route) error) SearchOption {
	return func(o *searchOptions) { o.onVisit = fn }
}

// BuildNetwork constructs the flight network. See core.Build for the
// construction rules and errors; a route with an unregistered source airport
// fails with *core.UnknownAirportError and no graph is returned.
func BuildNetwork(airports []records.Airport, routes []records.Route, airlines []records.Airline, opts ...core.BuildOption) (*core.Graph, error) {
	return core.Build(airports, routes, airlines, opts...)
}

// Network pairs a built graph with the dataset it was built from.
type Network struct {
	Graph *core.Graph
	Data  *records.Dataset
}

// LoadNetwork reads the files named by p and builds the network from them.
func LoadNetwork(ctx context.Context, p records.Paths, opts ...core.BuildOption) (*Network, error) {
	ds, err := records.Load(ctx, p)
	if err != nil {
		return nil, err
	}
	g, err := BuildNetwork(ds.Airports, ds.Routes, ds.Airlines, opts...)
	if err != nil {
		return nil, err
	}

	return &Network{Graph: g, Data: ds}, nil
}

// IsConnected reports whether end can be reached from start using only
// routes operated by airline. Unknown codes yield false with no error.
// The answer does not depend on order.
func IsConnected(g *core.Graph, start, end, airline string, order Order, opts ...SearchOption) (bool, error) {
	var so searchOptions
	for _, opt := range opts {
		opt(&so)
	}

	switch order {
	case DepthFirst:
		dopts := []dfs.Option{dfs.WithContext(so.ctx)}
		if so.onVisit != nil {
			dopts = append(dopts, dfs.WithOnVisit(so.onVisit))
		}

		return dfs.Connected(g, start, end, airline, dopts...)
	case BreadthFirst:
		bopts := []bfs.Option{bfs.WithContext(so.ctx)}
		if so.onVisit != nil {
			bopts = append(bopts, bfs.WithOnVisit(so.onVisit))
		}

		return bfs.Connected(g, start, end, airline, bopts...)
	default:
		return false, fmt.Errorf("%w: %d", ErrUnknownOrder, int(order))
	}
}

// ShortestPath returns the minimum-cost itinerary from start to end over all
// airlines. Unreachable or unknown endpoints fail with dijkstra.ErrNoPath.
func ShortestPath(g *core.Graph, start, end string, metric dijkstra.Metric, opts ...dijkstra.Option) (*dijkstra.Result, error) {
	return dijkstra.ShortestPath(g, start, end, metric, opts...)
}

// VertexCount returns the number of airports in g, 0 for a nil graph.
func VertexCount(g *core.Graph) int {
	if g == nil {
		return 0
	}

	return g.VertexCount()
}

// EdgeCount returns the number of routes in g, 0 for a nil graph.
func EdgeCount(g *core.Graph) int {
	if g == nil {
		return 0
	}

	return g.EdgeCount()
}
