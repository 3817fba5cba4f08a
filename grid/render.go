package grid

import (
	"fmt"
	"strings"
)

const rowSep = "\n"

// Render converts the grid to text: each row is the concatenation of
// cell(v) for its cells, rows are separated by a single newline and there is
// no trailing newline.
func (g *Grid[T]) Render(cell func(T) string) string {
	var b strings.Builder
	var row, col int
	for row = 0; row < g.height; row++ {
		if row > 0 {
			b.WriteString(rowSep)
		}
		for col = 0; col < g.width; col++ {
			b.WriteString(cell(g.cells[g.index(col, row)]))
		}
	}

	return b.String()
}

// String renders every cell with fmt.Sprint, so cell types implementing
// fmt.Stringer control their own glyph.
func (g *Grid[T]) String() string {
	return g.Render(func(v T) string { return fmt.Sprint(v) })
}
