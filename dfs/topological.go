package dfs

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph    // the graph being sorted
	opts  topoOptions    // traversal options (cancellation)
	state map[string]int // visitation state: White, Gray, Black
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Roots are visited in sorted ID order, so the result is deterministic.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrUndirectedGraph if g is not directed.
//   - ErrCycleDetected if a back-edge is found.
//   - ErrNeighborFetch wrapping the graph error if neighbor lookup fails.
//   - ctx.Err() if the context passed via WithCancelContext is cancelled.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	verts := g.Vertices()
	sorter := newTopoSorter(g, len(verts), options)
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	return sorter.reversed(), nil
}

// reachableOrder is TopologicalSort restricted to the vertices reachable
// from root. Cycles elsewhere in g are not visited.
func reachableOrder(g *core.Graph, root string, options []TopoOption) ([]string, error) {
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	sorter := newTopoSorter(g, 0, options)
	if err := sorter.visit(root); err != nil {
		return nil, err
	}

	return sorter.reversed(), nil
}

func newTopoSorter(g *core.Graph, size int, options []TopoOption) *topoSorter {
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	return &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, size),
		order: make([]string, 0, size),
	}
}

// reversed turns the recorded post-order into a topological order in place.
func (t *topoSorter) reversed() []string {
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[id] = Gray

	neighbors, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, e := range neighbors {
		if !e.Directed || e.From != id {
			continue
		}
		if err = t.visit(e.To); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
