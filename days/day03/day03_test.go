package day03_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/days/day03"
	"github.com/katalvlaran/aoc2025/puzzle"
)

const sample = `987654321111111
811111111111119
234234234234278
818181911112111
`

func TestSolve_Sample(t *testing.T) {
	ans, err := day03.Solve(sample)
	require.NoError(t, err)
	require.Equal(t, puzzle.Both(357, 3121910778619), ans)
}

func TestMaxJoltage(t *testing.T) {
	tests := []struct {
		bank []uint8
		k    int
		want uint64
	}{
		{[]uint8{9, 8, 7, 6, 5, 4, 3, 2, 1, 1, 1, 1, 1, 1, 1}, 2, 98},
		{[]uint8{8, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 9}, 2, 89},
		{[]uint8{8, 1, 8, 1, 8, 1, 9, 1, 1, 1, 1, 2, 1, 1, 1}, 2, 92},
		{[]uint8{8, 1, 8, 1, 8, 1, 9, 1, 1, 1, 1, 2, 1, 1, 1}, 12, 888911112111},
		{[]uint8{1, 2, 3}, 3, 123},
	}
	for _, tc := range tests {
		got, ok := day03.MaxJoltage(tc.bank, tc.k)
		require.True(t, ok)
		require.Equal(t, tc.want, got)
	}

	_, ok := day03.MaxJoltage([]uint16{1, 2}, 3)
	require.False(t, ok)
}

func TestSolve_ShortBanks(t *testing.T) {
	ans, err := day03.Solve("12345\n54321\n")
	require.NoError(t, err)
	require.Equal(t, puzzle.SilverOnly(45+54), ans)
}

func TestParse_Malformed(t *testing.T) {
	_, err := day03.Parse("12a4\n")
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
