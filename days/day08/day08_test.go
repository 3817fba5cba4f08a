package day08_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/days/day08"
	"github.com/katalvlaran/aoc2025/puzzle"
)

const line = `0,0,0
1,0,0
10,0,0
11,0,0
100,0,0
102,0,0
`

func TestSilver(t *testing.T) {
	points, err := day08.Parse(line)
	require.NoError(t, err)
	require.Equal(t, uint64(4), day08.Silver(points, 2))
	// everything joined: a single circuit of six
	require.Equal(t, uint64(6), day08.Silver(points, 100))
}

func TestSilver_NonPositiveCount(t *testing.T) {
	points, err := day08.Parse(line)
	require.NoError(t, err)
	// nothing joined: six singleton circuits
	require.Equal(t, uint64(1), day08.Silver(points, 0))
	require.Equal(t, uint64(1), day08.Silver(points, -1))
}

func TestGold(t *testing.T) {
	points, err := day08.Parse(line)
	require.NoError(t, err)
	got, err := day08.Gold(points)
	require.NoError(t, err)
	require.Equal(t, uint64(11*100), got)
}

func TestGold_GrowsCandidateEdges(t *testing.T) {
	// a dense cluster uses up the first candidate edges before the far box
	// gets any
	var sb strings.Builder
	for x := 1; x <= 10; x++ {
		fmt.Fprintf(&sb, "%d,0,0\n", x)
	}
	sb.WriteString("1000,0,0\n")

	ans, err := day08.Solve(sb.String())
	require.NoError(t, err)
	require.Equal(t, uint64(10*1000), ans.Gold)
	require.Equal(t, uint64(11), ans.Silver)
}

func TestGold_TooFew(t *testing.T) {
	_, err := day08.Gold([]day08.Point{{X: 1}})
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"1,2\n", "1,2,x\n"} {
		_, err := day08.Parse(in)
		require.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
