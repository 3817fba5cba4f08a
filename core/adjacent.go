package core

import "sort"

// Neighbors returns the edges leaving id, sorted by Edge.ID. For undirected
// edges both endpoints see the edge; for directed edges only From does.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d log d) for d incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique vertex IDs reachable over one edge from id,
// sorted ascending.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else {
			seen[e.From] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for nid := range seen {
		out = append(out, nid)
	}
	sort.Strings(out)

	return out, nil
}
