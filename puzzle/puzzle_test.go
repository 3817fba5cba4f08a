package puzzle_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/puzzle"
)

func TestAnswers_String(t *testing.T) {
	require.Equal(t, "silver: 3", puzzle.SilverOnly(3).String())
	require.Equal(t, "silver: 3\ngold: 6", puzzle.Both(3, 6).String())
	// a zero gold answer is still printed when present
	require.Equal(t, "silver: 1\ngold: 0", puzzle.Both(1, 0).String())
}

func TestMalformed(t *testing.T) {
	err := puzzle.Malformed("line %d: %q", 3, "X12")
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
	require.Contains(t, err.Error(), `line 3: "X12"`)

	wrapped := fmt.Errorf("day01: %w", err)
	require.True(t, errors.Is(wrapped, puzzle.ErrMalformedInput))
}

func TestLines(t *testing.T) {
	require.Nil(t, puzzle.Lines(""))
	require.Nil(t, puzzle.Lines("\n\n"))
	require.Equal(t, []string{"a", "b"}, puzzle.Lines("a\nb\n"))
	require.Equal(t, []string{"a", "", "b"}, puzzle.Lines("a\r\n\r\nb\r\n"))
}

func TestAsMalformed(t *testing.T) {
	require.NoError(t, puzzle.AsMalformed(nil))

	base := errors.New("grid: rows differ")
	err := puzzle.AsMalformed(base)
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
	require.ErrorIs(t, err, base)

	already := puzzle.Malformed("x")
	require.Equal(t, already, puzzle.AsMalformed(already))
}
