package grid

import "iter"

// All yields every (position, value) pair in row-major order: row 0 from
// left to right, then row 1, and so on.
func (g *Grid[T]) All() iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		for i, v := range g.cells {
			if !yield(g.Coordinate(i), v) {
				return
			}
		}
	}
}

// Row yields the cells of one row from left to right.
// An out-of-range row yields nothing.
func (g *Grid[T]) Row(row int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if row < 0 || row >= g.height {
			return
		}
		for _, v := range g.cells[row*g.width : (row+1)*g.width] {
			if !yield(v) {
				return
			}
		}
	}
}

// Col yields the cells of one column from top to bottom.
// An out-of-range column yields nothing.
func (g *Grid[T]) Col(col int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if col < 0 || col >= g.width {
			return
		}
		for i := col; i < len(g.cells); i += g.width {
			if !yield(g.cells[i]) {
				return
			}
		}
	}
}

// Find returns the first position, in row-major order, whose value
// satisfies pred.
func (g *Grid[T]) Find(pred func(T) bool) (Pos, bool) {
	for p, v := range g.All() {
		if pred(v) {
			return p, true
		}
	}

	return Pos{}, false
}

// Count returns the number of cells satisfying pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}

	return n
}
