package day05_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/days/day05"
	"github.com/katalvlaran/aoc2025/puzzle"
)

const sample = `3-5
10-14
16-20
12-18

1
5
8
11
17
32
`

func TestSolve_Sample(t *testing.T) {
	ans, err := day05.Solve(sample)
	require.NoError(t, err)
	require.Equal(t, puzzle.Both(3, 14), ans)
}

func TestMerge(t *testing.T) {
	got := day05.Merge([]day05.Range{{Start: 10, End: 12}, {Start: 1, End: 3}, {Start: 4, End: 5}, {Start: 11, End: 20}})
	require.Equal(t, []day05.Range{{Start: 1, End: 5}, {Start: 10, End: 20}}, got)
	require.Empty(t, day05.Merge(nil))
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"3-\n\n1\n", "3-5\n\nx\n", "9-2\n"} {
		_, err := day05.Parse(in)
		require.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
