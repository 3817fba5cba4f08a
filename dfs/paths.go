package dfs

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/core"
)

// CountPaths returns the number of distinct directed paths from one vertex
// to another. Parallel edges count as distinct paths. A path from a vertex
// to itself counts once (the empty path).
//
// A missing target is not an error: no path can reach it, so the count is 0.
//
// Only vertices reachable from from are ordered, so a cycle elsewhere in g
// does not affect the count.
//
// Errors:
//   - ErrGraphNil, ErrUndirectedGraph as for TopologicalSort.
//   - ErrCycleDetected if a cycle is reachable from from.
//   - ErrStartVertexNotFound if from is not a vertex of g.
//
// The count is accumulated in uint64 and wraps silently on overflow.
func CountPaths(g *core.Graph, from, to string, options ...TopoOption) (uint64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasVertex(from) {
		return 0, ErrStartVertexNotFound
	}
	if !g.HasVertex(to) {
		return 0, nil
	}

	order, err := reachableOrder(g, from, options)
	if err != nil {
		return 0, err
	}

	ways := make(map[string]uint64, len(order))
	ways[from] = 1
	for _, v := range order {
		n := ways[v]
		if n == 0 || v == to {
			continue
		}
		neighbors, err := g.Neighbors(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, e := range neighbors {
			if e.Directed && e.From == v {
				ways[e.To] += n
			}
		}
	}

	return ways[to], nil
}
