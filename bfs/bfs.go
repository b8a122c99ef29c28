// Package bfs answers airline-restricted reachability with a breadth-first
// search over routes.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/airnet/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph    *core.Graph
	opts     BFSOptions
	ctx      context.Context
	airline  string
	end      string
	queue    []core.Route
	head     int // index of the next route to dequeue
	expanded map[string]struct{}
}

// Connected reports whether end can be reached from start using only routes
// operated by airline. Routes are explored in discovery order (FIFO), and the
// search returns true as soon as a dequeued route lands on end.
//
// Unknown start or end codes yield false with a nil error. Returns
// ErrGraphNil for a nil graph, the context error on cancellation, or the
// wrapped OnVisit error.
func Connected(g *core.Graph, start, end, airline string, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.HasAirport(start) || !g.HasAirport(end) {
		return false, nil
	}

	w := &walker{
		graph:    g,
		opts:     o,
		ctx:      o.Ctx,
		airline:  airline,
		end:      end,
		expanded: map[string]struct{}{start: {}},
	}
	// Seed queue with start's routes
	w.enqueueRoutes(start)

	return w.loop()
}

// loop processes the queue until a route reaches end, the queue empties,
// an error occurs, or the context is cancelled.
func (w *walker) loop() (bool, error) {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		cur := w.dequeue()
		if err := w.opts.OnVisit(cur); err != nil {
			return false, fmt.Errorf("bfs: OnVisit error at route %d: %w", cur.ID, err)
		}
		if cur.To == w.end {
			return true, nil
		}

		// first time reaching this airport?
		if _, done := w.expanded[cur.To]; !done {
			w.expanded[cur.To] = struct{}{}
			w.enqueueRoutes(cur.To)
		}
	}

	return false, nil
}

// dequeue takes the oldest route off the queue.
func (w *walker) dequeue() core.Route {
	r := w.queue[w.head]
	w.head++

	return r
}

// enqueueRoutes appends code's routes of the searched airline.
func (w *walker) enqueueRoutes(code string) {
	for _, r := range w.graph.Outgoing(code) {
		if r.Airline != w.airline {
			continue
		}
		w.opts.OnEnqueue(r)
		w.queue = append(w.queue, r)
	}
}
