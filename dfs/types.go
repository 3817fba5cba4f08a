package dfs

import (
	"context"
	"errors"
)

// Visitation states used by the traversal.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrUndirectedGraph is returned when an ordering is requested on an
	// undirected graph.
	ErrUndirectedGraph = errors.New("dfs: requires directed graph")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// TopoOption configures optional behavior for TopologicalSort and CountPaths.
type TopoOption func(*topoOptions)

// topoOptions holds settings for the traversal, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
