// Package bfs provides tunable options and error definitions
// for breadth-first airline reachability over a core.Graph.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/airnet/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize the search.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called for each route appended to the queue.
	OnEnqueue func(r core.Route)

	// OnVisit is called for each route taken off the queue. If it returns
	// an error, the search aborts and propagates that error.
	OnVisit func(r core.Route) error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(core.Route) {},
		OnVisit:   func(core.Route) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(r core.Route)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on dequeue; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(r core.Route) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
