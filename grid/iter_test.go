package grid_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/aoc2025/grid"
	"github.com/stretchr/testify/require"
)

// TestAll_RowMajor verifies count and order of indexed iteration.
func TestAll_RowMajor(t *testing.T) {
	g := grid.Must(grid.FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3))

	var pos []grid.Pos
	var vals []int
	for p, v := range g.All() {
		pos = append(pos, p)
		vals = append(vals, v)
	}
	require.Len(t, pos, g.Width()*g.Height())
	require.Equal(t, []grid.Pos{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}, pos)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, vals)
}

// TestAll_Restartable checks that the sequence can be consumed twice and
// honours an early break.
func TestAll_Restartable(t *testing.T) {
	g := digits3x3()
	seq := g.All()

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)

	n = 0
	for range seq {
		n++
	}
	require.Equal(t, 9, n)
}

// TestRowCol verifies contiguous and strided iteration.
func TestRowCol(t *testing.T) {
	g := digits3x3()
	require.Equal(t, []int{4, 5, 6}, slices.Collect(g.Row(1)))
	require.Equal(t, []int{2, 5, 8}, slices.Collect(g.Col(1)))

	rect := grid.Must(grid.FromSlice([]int{1, 2, 3, 4, 5, 6}, 3, 2))
	require.Equal(t, []int{3, 6}, slices.Collect(rect.Col(2)))
	require.Equal(t, []int{4, 5, 6}, slices.Collect(rect.Row(1)))
}

// TestRowCol_OutOfRange ensures out-of-range indices yield nothing.
func TestRowCol_OutOfRange(t *testing.T) {
	g := digits3x3()
	require.Empty(t, slices.Collect(g.Row(69)))
	require.Empty(t, slices.Collect(g.Col(420)))
	require.Empty(t, slices.Collect(g.Row(-1)))
	require.Empty(t, slices.Collect(g.Col(-1)))
}

// TestFind returns the smallest row, then the smallest column.
func TestFind(t *testing.T) {
	g := grid.Must(grid.FromText[rune]("..#\n#.#\n", grid.Identity))

	p, ok := g.Find(func(r rune) bool { return r == '#' })
	require.True(t, ok)
	require.Equal(t, grid.Pos{Col: 2, Row: 0}, p)

	_, ok = g.Find(func(r rune) bool { return r == 'S' })
	require.False(t, ok)
}

// TestFind_ShortCircuits ensures the predicate is not called past the match.
func TestFind_ShortCircuits(t *testing.T) {
	g := digits3x3()
	calls := 0
	_, ok := g.Find(func(v int) bool {
		calls++
		return v == 3
	})
	require.True(t, ok)
	require.Equal(t, 3, calls)
}

// TestCount counts matching cells.
func TestCount(t *testing.T) {
	g := digits3x3()
	require.Equal(t, 4, g.Count(func(v int) bool { return v%2 == 0 }))
	require.Zero(t, g.Count(func(v int) bool { return v > 9 }))
}
