// File: dijkstra.go
// Role: minimum-cost route search on the flight network.
//
// A single runner performs the relaxation for every metric; the metric only
// chooses which route weight is read. Airports move through three states:
//
//	UNVISITED → FRONTIER (first finite cost) → FINALIZED (extracted as minimum)
//
// A finalised airport never returns to the frontier.
//
// Notes on implementation choices:
//
//   - The frontier is a binary min-heap with lazy deletion: an improved cost
//     pushes a fresh entry and stale entries are skipped when popped. Several
//     entries for the same airport may coexist.
//   - Equal costs are ordered by push sequence, so ties break the same way
//     for the whole run.
//   - Missing cost entries read as +Inf; nothing is allocated for airports the
//     search never touches.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/airnet/core"
)

// ShortestPath returns a minimum-cost itinerary from start to end over the
// routes of all airlines, where cost accumulates metric.Weight.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. metric must be Distance or Time (ErrUnknownMetric).
//  3. Options must be valid (ErrBadMaxIterations).
//  4. start and end must be registered airports (ErrNoPath wrapping core.ErrAirportNotFound).
//
// The search stops as soon as end is finalised. If end is never reached the
// result is ErrNoPath. ShortestPath(g, A, A, m) yields Path [A] at cost 0.
//
// Complexity:
//
//   - Time:  O((A + R) log R)
//   - Space: O(A + R)
func ShortestPath(g *core.Graph, start, end string, metric Metric, opts ...Option) (*Result, error) {
	r, err := newRunner(g, start, metric, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasAirport(end) {
		return nil, fmt.Errorf("%w: %w: %q", ErrNoPath, core.ErrAirportNotFound, end)
	}

	r.target = end
	if err = r.process(); err != nil {
		return nil, err
	}

	cost := r.cost(end)
	if math.IsInf(cost, 1) {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, start, end)
	}
	path, legs := reconstruct(r.prev, start, end)

	return &Result{Path: path, Legs: legs, Cost: cost, Metric: metric}, nil
}

// Distances runs the search from start to exhaustion and returns the cost
// and predecessor of every airport. Validation matches ShortestPath.
func Distances(g *core.Graph, start string, metric Metric, opts ...Option) (*Tree, error) {
	r, err := newRunner(g, start, metric, opts)
	if err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	// Report +Inf explicitly for every airport the search never reached.
	for _, code := range g.Codes() {
		if _, ok := r.dist[code]; !ok {
			r.dist[code] = math.Inf(1)
		}
	}

	return &Tree{Source: start, Metric: metric, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g         *core.Graph           // read-only input
	options   Options               // context, budget, hook
	metric    Metric                // weight selector
	target    string                // early-exit airport; "" runs to exhaustion
	dist      map[string]float64    // best known cost; missing means +Inf
	prev      map[string]core.Route // route used to reach each airport
	finalized map[string]bool       // airports whose cost is final
	pq        frontier              // lazy min-heap
	seq       uint64                // push counter for tie-breaking
	rounds    int                   // airports finalised so far
}

// newRunner validates inputs and seeds the frontier with start at cost 0.
func newRunner(g *core.Graph, start string, metric Metric, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !metric.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMetric, int(metric))
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if !g.HasAirport(start) {
		return nil, fmt.Errorf("%w: %w: %q", ErrNoPath, core.ErrAirportNotFound, start)
	}

	r := &runner{
		g:         g,
		options:   cfg,
		metric:    metric,
		dist:      make(map[string]float64),
		prev:      make(map[string]core.Route),
		finalized: make(map[string]bool),
	}
	r.dist[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)

	return r, nil
}

// cost returns the best known cost of code, +Inf if none.
func (r *runner) cost(code string) float64 {
	if d, ok := r.dist[code]; ok {
		return d
	}

	return math.Inf(1)
}

// push adds a frontier entry stamped with the next sequence number.
func (r *runner) push(code string, cost float64) {
	r.seq++
	heap.Push(&r.pq, &frontierItem{code: code, cost: cost, seq: r.seq})
}

// process extracts the cheapest unfinalised airport until the heap is empty
// or the target is finalised.
func (r *runner) process() error {
	ctx := r.options.Ctx
	var u string
	for r.pq.Len() > 0 {
		// 1) Cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// 2) Pop; a finalised airport means a stale entry.
		item := heap.Pop(&r.pq).(*frontierItem)
		u = item.code
		if r.finalized[u] {
			continue
		}

		// 3) Budget
		if r.options.MaxIterations > 0 && r.rounds >= r.options.MaxIterations {
			return fmt.Errorf("%w: budget of %d airports spent", ErrSearchExhausted, r.options.MaxIterations)
		}
		r.rounds++

		// 4) Finalise u
		r.finalized[u] = true
		if r.options.OnFinalize != nil {
			r.options.OnFinalize(u, r.dist[u])
		}
		if u == r.target {
			return nil
		}

		// 5) Relax outgoing routes
		r.relax(u)
	}

	return nil
}

// relax tries every route out of u. Assumes u is finalised.
func (r *runner) relax(u string) {
	du := r.dist[u]
	var nd float64
	for _, e := range r.g.Outgoing(u) {
		if r.finalized[e.To] {
			continue
		}
		nd = du + r.metric.Weight(e)
		if nd < r.cost(e.To) {
			r.dist[e.To] = nd
			r.prev[e.To] = e
			r.push(e.To, nd)
		}
	}
}

// reconstruct walks predecessor routes back from end to start and returns
// the airport sequence and legs in travel order. end must be reachable.
func reconstruct(prev map[string]core.Route, start, end string) ([]string, []core.Route) {
	var legs []core.Route
	for cur := end; cur != start; {
		e := prev[cur]
		legs = append(legs, e)
		cur = e.From
	}
	for i, j := 0, len(legs)-1; i < j; i, j = i+1, j-1 {
		legs[i], legs[j] = legs[j], legs[i]
	}

	path := make([]string, 0, len(legs)+1)
	path = append(path, start)
	for _, e := range legs {
		path = append(path, e.To)
	}

	return path, legs
}

// frontierItem is one (airport, cost) entry of the frontier.
type frontierItem struct {
	code string
	cost float64
	seq  uint64 // push order, breaks cost ties
}

// frontier is a min-heap of *frontierItem ordered by cost, then seq.
type frontier []*frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
