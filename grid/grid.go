package grid

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Grid is a rectangular, row-major container of cells.
// len(cells) == width*height holds for the whole lifetime of the value.
type Grid[T any] struct {
	cells  []T // flat storage, offset = col + row*width
	width  int // number of columns
	height int // number of rows
}

// FromText builds a grid from a block of text.
//
// The height is the number of non-empty lines and the width is the rune
// length of the first line. Every non-whitespace rune, in reading order, is
// passed to mapper together with its position. The shape is validated before
// mapper is called, so mapper only ever sees in-range positions.
//
// Returns ErrEmptyGrid when the first line or the whole text is empty,
// ErrNonRectangular when the cell count is not width*height, or the first
// error returned by mapper, unchanged.
func FromText[T any](text string, mapper CellMapper[T]) (*Grid[T], error) {
	lines := strings.Split(text, "\n")
	width := utf8.RuneCountInString(strings.TrimSuffix(lines[0], "\r"))
	height := 0
	for _, line := range lines {
		if strings.TrimSuffix(line, "\r") != "" {
			height++
		}
	}
	if width == 0 || height == 0 {
		return nil, ErrEmptyGrid
	}

	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	if count != width*height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrNonRectangular, count, width, height)
	}

	cells := make([]T, 0, count)
	i := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		v, err := mapper(r, Pos{Col: i % width, Row: i / width})
		if err != nil {
			return nil, err
		}
		cells = append(cells, v)
		i++
	}

	return &Grid[T]{cells: cells, width: width, height: height}, nil
}

// FromSlice wraps cells as a width×height grid without copying.
// The caller must not resize cells afterwards.
func FromSlice[T any](cells []T, width, height int) (*Grid[T], error) {
	n, err := area(width, height)
	if err != nil {
		return nil, err
	}
	if len(cells) != n {
		return nil, fmt.Errorf("%w: len %d for %dx%d", ErrDimensionMismatch, len(cells), width, height)
	}

	return &Grid[T]{cells: cells, width: width, height: height}, nil
}

// New returns a width×height grid filled with the zero value of T.
func New[T any](width, height int) (*Grid[T], error) {
	n, err := area(width, height)
	if err != nil {
		return nil, err
	}

	return &Grid[T]{cells: make([]T, n), width: width, height: height}, nil
}

// area returns width*height, rejecting non-positive dimensions and products
// that do not fit in an int.
func area(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, ErrEmptyGrid
	}
	if width > math.MaxInt/height {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrDimensionMismatch, width, height)
	}

	return width * height, nil
}

// Must returns g as is. It panics if err is non-nil.
func Must[T any](g *Grid[T], err error) *Grid[T] {
	if err != nil {
		panic(err)
	}

	return g
}

// Identity is a CellMapper that stores the character itself.
func Identity(r rune, _ Pos) (rune, error) {
	return r, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns width*height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Cells returns a row-major copy of the grid contents.
func (g *Grid[T]) Cells() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)

	return out
}

// Clone returns a deep copy with independent storage.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{cells: g.Cells(), width: g.width, height: g.height}
}

// InBounds reports whether (col,row) lies within the grid.
func (g *Grid[T]) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// index maps an in-bounds (col,row) to its row-major offset.
func (g *Grid[T]) index(col, row int) int {
	return col + row*g.width
}

// Coordinate converts a row-major offset back to a position.
func (g *Grid[T]) Coordinate(idx int) Pos {
	return Pos{Col: idx % g.width, Row: idx / g.width}
}

// At returns the cell at (col,row). The boolean is false, and the value is
// the zero T, when the position is outside the grid.
func (g *Grid[T]) At(col, row int) (T, bool) {
	if !g.InBounds(col, row) {
		var zero T
		return zero, false
	}

	return g.cells[g.index(col, row)], true
}

// Ref returns a pointer into the grid storage for (col,row), or nil when the
// position is outside the grid. The pointer stays valid until the grid is
// replaced; TransposeSquare moves values under it.
func (g *Grid[T]) Ref(col, row int) *T {
	if !g.InBounds(col, row) {
		return nil
	}

	return &g.cells[g.index(col, row)]
}

// Set stores v at (col,row) and reports whether the position was in bounds.
func (g *Grid[T]) Set(col, row int, v T) bool {
	p := g.Ref(col, row)
	if p == nil {
		return false
	}
	*p = v

	return true
}
