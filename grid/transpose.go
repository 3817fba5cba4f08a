package grid

// TransposeSquare transposes the grid in place, swapping (col,row) with
// (row,col) above the diagonal. The grid is left untouched and ErrNonSquare
// is returned when width != height.
//
// See https://en.wikipedia.org/wiki/In-place_matrix_transposition#Square_matrices
func (g *Grid[T]) TransposeSquare() error {
	if g.width != g.height {
		return ErrNonSquare
	}

	n := g.width
	var row, col, src, dst int
	for row = 0; row < n-1; row++ {
		for col = row + 1; col < n; col++ {
			src = row*n + col
			dst = col*n + row
			g.cells[src], g.cells[dst] = g.cells[dst], g.cells[src]
		}
	}

	return nil
}

// Transposed returns a new height×width grid where rows and columns are
// exchanged. The receiver is not modified. It always allocates, also for
// square grids; use TransposeSquare to avoid the copy.
func (g *Grid[T]) Transposed() *Grid[T] {
	out := make([]T, len(g.cells))

	var row, col, base int
	for row = 0; row < g.height; row++ {
		base = row * g.width
		for col = 0; col < g.width; col++ {
			// (col,row) in the source becomes (row,col) in a grid of width g.height.
			out[col*g.height+row] = g.cells[base+col]
		}
	}

	return &Grid[T]{cells: out, width: g.height, height: g.width}
}
