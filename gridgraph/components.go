package gridgraph

import "github.com/katalvlaran/aoc2025/grid"

// Components finds all contiguous regions of cells satisfying member,
// according to conn. Regions are returned in row-major order of their first
// cell; the positions inside a region are in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Components[T any](g *grid.Grid[T], conn grid.Connectivity, member func(T) bool) [][]grid.Pos {
	seen := grid.Must(grid.New[bool](g.Width(), g.Height()))
	offsets := conn.Offsets()
	var comps [][]grid.Pos

	for p0, v0 := range g.All() {
		if !member(v0) {
			continue
		}
		mark := seen.Ref(p0.Col, p0.Row)
		if *mark {
			continue
		}
		*mark = true

		comp := []grid.Pos{p0}
		for qi := 0; qi < len(comp); qi++ {
			e := g.Entry(comp[qi].Col, comp[qi].Row)
			for _, d := range offsets {
				v, p, ok := e.Offset(d.DX, d.DY)
				if !ok || !member(v) {
					continue
				}
				if mark := seen.Ref(p.Col, p.Row); !*mark {
					*mark = true
					comp = append(comp, p)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
