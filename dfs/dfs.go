// Package dfs answers airline-restricted reachability with a depth-first search.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/airnet/core"
)

// dfsWalker encapsulates state during one search.
type dfsWalker struct {
	graph    *core.Graph         // underlying network, read-only
	opts     DFSOptions          // search options
	airline  string              // only routes of this airline are followed
	end      string              // target airport code
	stack    []core.Route        // LIFO frontier of routes
	expanded map[string]struct{} // airports whose routes were already pushed
}

// Connected reports whether end can be reached from start using only routes
// operated by airline.
//
// Routes are kept on a stack: the most recently discovered route is followed
// first. The search returns true as soon as a popped route lands on end, so
// Connected(g, A, A, L) is true only when an L-cycle leads back to A.
//
// Unknown start or end codes are not errors: the answer is simply false.
// Errors are reserved for ErrGraphNil, context cancellation, and OnVisit.
//
// Complexity: Time O(A + R), Memory O(A + R) for the visited set and stack.
func Connected(g *core.Graph, start, end, airline string, opts ...Option) (bool, error) {
	// 1. Validate input graph
	if g == nil {
		return false, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Unknown endpoints are unreachable, not failures
	if !g.HasAirport(start) || !g.HasAirport(end) {
		return false, nil
	}

	// 4. Seed the stack with start's airline routes; start counts as expanded
	w := &dfsWalker{
		graph:    g,
		opts:     dopts,
		airline:  airline,
		end:      end,
		expanded: map[string]struct{}{start: {}},
	}
	w.push(start)

	return w.run()
}

// run pops routes until one reaches end or the stack is exhausted.
func (w *dfsWalker) run() (bool, error) {
	var cur core.Route
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		// 2. Pop the most recently discovered route
		last := len(w.stack) - 1
		cur = w.stack[last]
		w.stack = w.stack[:last]

		// 3. Visit hook
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(cur); err != nil {
				return false, fmt.Errorf("dfs: OnVisit hook for route %d: %w", cur.ID, err)
			}
		}

		// 4. Short-circuit on arrival
		if cur.To == w.end {
			return true, nil
		}

		// 5. Expand each airport once
		if _, done := w.expanded[cur.To]; done {
			continue
		}
		w.expanded[cur.To] = struct{}{}
		w.push(cur.To)
	}

	return false, nil
}

// push appends code's routes of the searched airline to the stack.
func (w *dfsWalker) push(code string) {
	for _, r := range w.graph.Outgoing(code) {
		if r.Airline == w.airline {
			w.stack = append(w.stack, r)
		}
	}
}
