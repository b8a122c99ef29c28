// Package dijkstra defines the metric, options, results and sentinel errors
// for minimum-cost route search over a core.Graph.
//
// Dijkstra computes the minimum cumulative distance or time from a source
// airport, across the routes of all airlines. Weights are non-negative by
// construction: core.Build rejects negative distances and times.
//
// Complexity:
//
//	– Time:  O((A + R) log R)   where A = |airports|, R = |routes|
//	   • Each airport is finalised at most once.
//	   • Each successful relaxation pushes one heap entry (at most R).
//	– Space: O(A + R)
//	   • O(A) for cost and predecessor maps.
//	   • O(R) heap entries in the worst case (lazy deletion).
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrUnknownMetric     if the metric is neither Distance nor Time.
//	– ErrNoPath            if the destination is unreachable or a code is unknown.
//	– ErrSearchExhausted   if WithMaxIterations was exceeded.
//	– ErrBadMaxIterations  if WithMaxIterations got a non-positive budget.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/airnet/core"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownMetric indicates a Metric value other than Distance or Time.
	ErrUnknownMetric = errors.New("dijkstra: unknown metric")

	// ErrNoPath indicates that the destination cannot be reached from the source.
	// Unknown start or end codes also yield ErrNoPath, additionally wrapping
	// core.ErrAirportNotFound.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrSearchExhausted indicates that the iteration budget ran out before
	// the search could finish.
	ErrSearchExhausted = errors.New("dijkstra: iteration budget exhausted")

	// ErrBadMaxIterations indicates a non-positive WithMaxIterations budget.
	ErrBadMaxIterations = errors.New("dijkstra: MaxIterations must be positive")
)

// Metric selects which route weight is accumulated.
type Metric int

const (
	// Distance accumulates Route.Distance.
	Distance Metric = iota

	// Time accumulates Route.Time.
	Time
)

// Weight returns the weight of r under m.
func (m Metric) Weight(r core.Route) float64 {
	if m == Time {
		return r.Time
	}

	return r.Distance
}

// String returns "distance" or "time".
func (m Metric) String() string {
	switch m {
	case Distance:
		return "distance"
	case Time:
		return "time"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// Valid reports whether m is a known metric.
func (m Metric) Valid() bool { return m == Distance || m == Time }

// ParseMetric maps "distance"/"dist" and "time" (any case) to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distance", "dist":
		return Distance, nil
	case "time":
		return Time, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
}

// Options configures the search.
//
// Ctx           – checked once per heap extraction; defaults to Background.
// MaxIterations – cap on finalised airports; 0 means unbounded.
// OnFinalize    – called when an airport's cost becomes final.
type Options struct {
	Ctx           context.Context
	MaxIterations int
	OnFinalize    func(code string, cost float64)

	err error // recorded by invalid options, surfaced on run
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns Background context, no iteration budget and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxIterations: 0,
		OnFinalize:    nil,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIterations bounds the number of airports the search may finalise.
// Exceeding it fails with ErrSearchExhausted. n must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxIterations, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithOnFinalize registers fn to observe airports in the order they are finalised.
func WithOnFinalize(fn func(code string, cost float64)) Option {
	return func(o *Options) {
		o.OnFinalize = fn
	}
}

// Result is a minimum-cost itinerary.
type Result struct {
	// Path lists airport codes from start to end inclusive.
	Path []string

	// Legs holds the route taken for each hop; len(Legs) == len(Path)-1.
	Legs []core.Route

	// Cost is the sum of Metric.Weight over Legs.
	Cost float64

	// Metric is the weight that was minimised.
	Metric Metric
}

// Tree holds single-source results for every airport.
//
// Dist[code] is the minimum cost from Source, or +Inf if unreachable.
// Prev[code] is the route used to reach code on one minimum-cost path;
// it is absent for Source and for unreachable airports.
type Tree struct {
	Source string
	Metric Metric
	Dist   map[string]float64
	Prev   map[string]core.Route
}

// PathTo reconstructs the minimum-cost itinerary from Source to code.
// Returns ErrNoPath if code was not reached.
func (t *Tree) PathTo(code string) (*Result, error) {
	d, ok := t.Dist[code]
	if !ok || math.IsInf(d, 1) {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, t.Source, code)
	}
	path, legs := reconstruct(t.Prev, t.Source, code)

	return &Result{Path: path, Legs: legs, Cost: d, Metric: t.Metric}, nil
}
