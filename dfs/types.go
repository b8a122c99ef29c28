// Package dfs defines options and errors for depth-first airline reachability.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/airnet/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Connected.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of Connected.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the search.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per popped route.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked for every route popped from the stack,
	// including routes whose destination was already expanded.
	// Returning an error aborts the search with that error.
	OnVisit func(r core.Route) error
}

// DefaultOptions returns DFSOptions with a background context and no hook.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext sets the Context for the search. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the per-route visit hook.
func WithOnVisit(fn func(r core.Route) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}
