// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrNotCycle indicates a graph that is not a single simple cycle.
	ErrNotCycle = errors.New("dfs: graph is not a single cycle")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs on discovery (pre-order). An error aborts.
	OnVisit func(v int) error

	// MaxDepth, if non-negative, limits recursion depth. Default -1.
	MaxDepth int

	// FullTraversal restarts from every unvisited vertex in ascending order.
	FullTraversal bool
}

// DefaultOptions returns Options with no limit and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth limits recursion; 0 visits only the root.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFullTraversal visits every component.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result collects a DFS run. Depth and Parent are indexed by vertex id
// (index 0 unused); Parent is 0 for roots and unvisited vertices.
type Result struct {
	Preorder  []int
	Postorder []int
	Depth     []int
	Parent    []int
	Visited   []bool
	// Components counts the DFS trees grown.
	Components int
}
