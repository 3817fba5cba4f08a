package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge.
	Weight int64

	// Directed is copied from the graph default when the edge is added.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all new edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory graph data structure.
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	nextEdgeID uint64              // atomic edge ID generator
	vertices   map[string]struct{} // vertex ID set
	edges      map[string]*Edge    // edge ID → Edge

	// adjacency[from][to][edgeID]; undirected edges are stored both ways.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default it is undirected, unweighted,
// without loops and without multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the default edge directedness.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }
