package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix gives stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and returns its ID. Missing endpoints
// are added as vertices.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is "".
//   - ErrBadWeight if the graph is unweighted and weight != 0.
//   - ErrLoopNotAllowed if from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed if from→to exists without WithMultiEdges.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacency[from][to][eid] = struct{}{}
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists. Undirected
// edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns all edges sorted by Edge.ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID.
// Must be called under the muEdgeAdj write lock.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// ensureAdjacency allocates the nested adjacency buckets for from→to.
// Must be called under the muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}
