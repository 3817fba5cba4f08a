// Package core defines the Graph, Vertex and Edge types shared by the graph
// helpers (dfs, mst) and the puzzle solvers that model their input as a graph.
//
// Graphs use string vertex IDs, may be directed or undirected, weighted or
// unweighted, and optionally allow parallel edges and self-loops. Vertices
// and edges live behind separate sync.RWMutex locks (muVert, muEdgeAdj), so a
// graph may be built from several goroutines.
//
// Determinism:
//
//   - Vertices() is sorted by ID.
//   - Edges() and Neighbors() are sorted by Edge.ID, which is the insertion
//     sequence ("e1", "e2", ...) compared as strings.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
