package grid

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// addChecked returns a+b, or false when the sum overflows N.
func addChecked[N constraints.Signed](a, b N) (N, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, true
}

// resolve applies (dx,dy) to anchor and reports whether the result is a
// valid position. Overflow is reported as out of bounds, never wrapped.
func (g *Grid[T]) resolve(anchor Pos, dx, dy int) (Pos, bool) {
	col, ok := addChecked(anchor.Col, dx)
	if !ok {
		return Pos{}, false
	}
	row, ok := addChecked(anchor.Row, dy)
	if !ok {
		return Pos{}, false
	}
	if !g.InBounds(col, row) {
		return Pos{}, false
	}

	return Pos{Col: col, Row: row}, true
}

// Entry is a read-only view of a grid anchored at one position.
// The anchor is not validated; every query checks bounds on its own.
type Entry[T any] struct {
	grid   *Grid[T]
	anchor Pos
}

// Entry returns a read-only offset view anchored at (col,row).
func (g *Grid[T]) Entry(col, row int) Entry[T] {
	return Entry[T]{grid: g, anchor: Pos{Col: col, Row: row}}
}

// Pos returns the anchor.
func (e Entry[T]) Pos() Pos { return e.anchor }

// Value returns the cell under the anchor.
func (e Entry[T]) Value() (T, bool) {
	return e.AtOffset(0, 0)
}

// AtOffset returns the cell at anchor+(dx,dy), or false when that position
// is outside the grid.
func (e Entry[T]) AtOffset(dx, dy int) (T, bool) {
	v, _, ok := e.Offset(dx, dy)

	return v, ok
}

// Offset is AtOffset that also returns the resolved position.
func (e Entry[T]) Offset(dx, dy int) (T, Pos, bool) {
	p, ok := e.grid.resolve(e.anchor, dx, dy)
	if !ok {
		var zero T
		return zero, Pos{}, false
	}

	return e.grid.cells[e.grid.index(p.Col, p.Row)], p, true
}

// Neighbors yields the in-bounds neighbours of the anchor in the order of
// conn's offset table.
func (e Entry[T]) Neighbors(conn Connectivity) iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		for _, d := range conn.offsets() {
			v, p, ok := e.Offset(d.DX, d.DY)
			if !ok {
				continue
			}
			if !yield(p, v) {
				return
			}
		}
	}
}

// CountNeighbors counts in-bounds neighbours whose value satisfies pred.
func (e Entry[T]) CountNeighbors(conn Connectivity, pred func(T) bool) int {
	n := 0
	for _, v := range e.Neighbors(conn) {
		if pred(v) {
			n++
		}
	}

	return n
}

// EntryMut is a writable view of a grid anchored at one position.
// Only one EntryMut (or Ref) should be used to write a given cell at a time.
type EntryMut[T any] struct {
	grid   *Grid[T]
	anchor Pos
}

// EntryMut returns a writable offset view anchored at (col,row).
func (g *Grid[T]) EntryMut(col, row int) EntryMut[T] {
	return EntryMut[T]{grid: g, anchor: Pos{Col: col, Row: row}}
}

// Pos returns the anchor.
func (e EntryMut[T]) Pos() Pos { return e.anchor }

// AtOffset returns a pointer to the cell at anchor+(dx,dy), or nil when that
// position is outside the grid.
func (e EntryMut[T]) AtOffset(dx, dy int) *T {
	p, _, _ := e.Offset(dx, dy)

	return p
}

// Offset is AtOffset that also returns the resolved position.
func (e EntryMut[T]) Offset(dx, dy int) (*T, Pos, bool) {
	p, ok := e.grid.resolve(e.anchor, dx, dy)
	if !ok {
		return nil, Pos{}, false
	}

	return &e.grid.cells[e.grid.index(p.Col, p.Row)], p, true
}

// ReadOnly narrows the view to an Entry over the same grid and anchor.
func (e EntryMut[T]) ReadOnly() Entry[T] {
	return Entry[T]{grid: e.grid, anchor: e.anchor}
}
