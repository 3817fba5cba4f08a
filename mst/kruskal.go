package mst

import (
	"sort"

	"github.com/katalvlaran/aoc2025/core"
)

// Kruskal computes the minimum spanning tree of an undirected, weighted graph.
// Edges are returned in merge order together with the total weight.
//
// Equal weights are broken by the order of graph.Edges() (sorted by Edge.ID),
// so the result is deterministic.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil, directed, or unweighted.
//   - ErrDisconnected : |V| == 0, or |V| > 1 and the graph is not connected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	// Self-loops cannot be part of a spanning tree.
	allEdges := graph.Edges()
	edges := make([]*core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	index := make(map[string]int, len(vertices))
	for i, vid := range vertices {
		index[vid] = i
	}
	dsu := NewDisjointSet(len(vertices))

	var (
		tree        = make([]core.Edge, 0, len(vertices)-1)
		totalWeight int64
	)
	for _, e := range edges {
		if !dsu.Union(index[e.From], index[e.To]) {
			continue
		}
		tree = append(tree, *e)
		totalWeight += e.Weight
		if len(tree) == len(vertices)-1 {
			break
		}
	}
	if len(tree) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, totalWeight, nil
}
