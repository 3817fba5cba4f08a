package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/grid"
)

// FloodFill returns a mask of the same shape as g where true marks every
// cell reachable from start by stepping through passable cells with conn
// connectivity. An impassable start yields an all-false mask.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for the mask and the queue.
func FloodFill[T any](g *grid.Grid[T], start grid.Pos, conn grid.Connectivity, passable func(T) bool) (*grid.Grid[bool], error) {
	if !g.InBounds(start.Col, start.Row) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfRange, start)
	}
	seen, err := grid.New[bool](g.Width(), g.Height())
	if err != nil {
		return nil, err
	}
	if v, _ := g.At(start.Col, start.Row); !passable(v) {
		return seen, nil
	}

	offsets := conn.Offsets()
	seen.Set(start.Col, start.Row, true)
	queue := []grid.Pos{start}
	for qi := 0; qi < len(queue); qi++ {
		e := g.Entry(queue[qi].Col, queue[qi].Row)
		for _, d := range offsets {
			v, p, ok := e.Offset(d.DX, d.DY)
			if !ok || !passable(v) {
				continue
			}
			if mark := seen.Ref(p.Col, p.Row); !*mark {
				*mark = true
				queue = append(queue, p)
			}
		}
	}

	return seen, nil
}
