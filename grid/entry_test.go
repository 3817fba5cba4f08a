package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/aoc2025/grid"
	"github.com/stretchr/testify/require"
)

func digits3x3() *grid.Grid[int] {
	return grid.Must(grid.FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3, 3))
}

// TestEntry_OffsetSafety checks that an offset resolves exactly when the
// target lies inside the grid, for every anchor and every offset in [-3,3]².
func TestEntry_OffsetSafety(t *testing.T) {
	g := grid.Must(grid.FromSlice([]int{0, 1, 2, 3, 4, 5}, 3, 2))

	for p := range g.All() {
		e := g.Entry(p.Col, p.Row)
		for dy := -3; dy <= 3; dy++ {
			for dx := -3; dx <= 3; dx++ {
				col, row := p.Col+dx, p.Row+dy
				inside := col >= 0 && row >= 0 && col < g.Width() && row < g.Height()

				v, at, ok := e.Offset(dx, dy)
				require.Equal(t, inside, ok, "anchor %v offset (%d,%d)", p, dx, dy)
				if inside {
					require.Equal(t, col+row*3, v)
					require.Equal(t, grid.Pos{Col: col, Row: row}, at)
				}
			}
		}
	}
}

// TestEntry_NoRowWrap ensures a step right from the last column does not
// read the first cell of the next row.
func TestEntry_NoRowWrap(t *testing.T) {
	g := digits3x3()
	_, ok := g.Entry(2, 0).AtOffset(1, 0)
	require.False(t, ok)
	_, ok = g.Entry(0, 1).AtOffset(-1, 0)
	require.False(t, ok)
}

// TestEntry_Overflow verifies that overflowing offsets fail instead of wrapping.
func TestEntry_Overflow(t *testing.T) {
	g := digits3x3()

	_, ok := g.Entry(math.MaxInt, 0).AtOffset(1, 0)
	require.False(t, ok)
	_, ok = g.Entry(0, math.MinInt).AtOffset(0, -1)
	require.False(t, ok)
	_, ok = g.Entry(0, 0).AtOffset(math.MinInt, math.MinInt)
	require.False(t, ok)
	require.Nil(t, g.EntryMut(1, 1).AtOffset(math.MaxInt, 0))
}

// TestEntry_InvalidAnchor shows that anchors are validated lazily.
func TestEntry_InvalidAnchor(t *testing.T) {
	g := digits3x3()
	e := g.Entry(-1, 0)

	_, ok := e.Value()
	require.False(t, ok)
	v, ok := e.AtOffset(1, 0)
	require.True(t, ok)
	require.Equal(t, 1, v)
}

// TestEntry_Neighbors checks Conn4/Conn8 iteration order at a border cell.
func TestEntry_Neighbors(t *testing.T) {
	g := digits3x3()

	var got []int
	for _, v := range g.Entry(0, 0).Neighbors(grid.Conn8) {
		got = append(got, v)
	}
	require.Equal(t, []int{2, 5, 4}, got)

	got = got[:0]
	for _, v := range g.Entry(1, 1).Neighbors(grid.Conn4) {
		got = append(got, v)
	}
	require.Equal(t, []int{2, 6, 8, 4}, got)

	even := func(v int) bool { return v%2 == 0 }
	require.Equal(t, 4, g.Entry(1, 1).CountNeighbors(grid.Conn8, even))
	require.Equal(t, 2, g.Entry(2, 2).CountNeighbors(grid.Conn8, even))
}

// TestEntryMut writes through offsets and narrows to a read-only entry.
func TestEntryMut(t *testing.T) {
	g := digits3x3()
	e := g.EntryMut(1, 1)

	p := e.AtOffset(-1, -1)
	require.NotNil(t, p)
	*p = 10

	p, at, ok := e.Offset(1, 1)
	require.True(t, ok)
	require.Equal(t, grid.Pos{Col: 2, Row: 2}, at)
	*p = 90

	require.Nil(t, e.AtOffset(2, 0))

	ro := e.ReadOnly()
	require.Equal(t, grid.Pos{Col: 1, Row: 1}, ro.Pos())
	v, ok := ro.AtOffset(-1, -1)
	require.True(t, ok)
	require.Equal(t, 10, v)
	require.Equal(t, []int{10, 2, 3, 4, 5, 6, 7, 8, 90}, g.Cells())
}
