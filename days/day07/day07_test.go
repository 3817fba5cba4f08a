package day07_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/days/day07"
	"github.com/katalvlaran/aoc2025/puzzle"
)

const small = `..S..
.....
..^..
.....
.^.^.
`

func TestSolve_Small(t *testing.T) {
	ans, err := day07.Solve(small)
	require.NoError(t, err)
	require.Equal(t, puzzle.Both(3, 4), ans)
}

func TestBeams_MergedBeamSplitsOnce(t *testing.T) {
	// two beams merge in column 3 and hit the last splitter together
	manifold, err := day07.Parse("...S...\n...^...\n..^.^..\n...^...\n")
	require.NoError(t, err)
	splits, timelines, err := day07.Beams(manifold)
	require.NoError(t, err)
	require.Equal(t, uint64(4), splits)
	require.Equal(t, uint64(6), timelines)
}

func TestBeams_EdgeDropsBeam(t *testing.T) {
	manifold, err := day07.Parse("S..\n^..\n")
	require.NoError(t, err)
	splits, timelines, err := day07.Beams(manifold)
	require.NoError(t, err)
	require.Equal(t, uint64(1), splits)
	require.Equal(t, uint64(1), timelines)
}

func TestBeams_NoStart(t *testing.T) {
	manifold, err := day07.Parse("...\n.^.\n")
	require.NoError(t, err)
	_, _, err = day07.Beams(manifold)
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestParse_Malformed(t *testing.T) {
	_, err := day07.Parse("S.x\n")
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
