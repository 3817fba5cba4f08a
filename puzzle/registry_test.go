package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/puzzle"
)

func constant(silver uint64) puzzle.Solver {
	return func(string) (puzzle.Answers, error) { return puzzle.SilverOnly(silver), nil }
}

func TestRegistry(t *testing.T) {
	var reg puzzle.Registry

	_, ok := reg.Latest()
	require.False(t, ok)
	require.Empty(t, reg.Days())

	require.NoError(t, reg.Register(7, constant(7)))
	require.NoError(t, reg.Register(1, constant(1)))
	require.NoError(t, reg.Register(12, constant(12)))

	require.Equal(t, []int{1, 7, 12}, reg.Days())
	latest, ok := reg.Latest()
	require.True(t, ok)
	require.Equal(t, 12, latest)

	s, ok := reg.Lookup(7)
	require.True(t, ok)
	ans, err := s("")
	require.NoError(t, err)
	require.Equal(t, uint64(7), ans.Silver)

	_, ok = reg.Lookup(2)
	require.False(t, ok)
}

func TestRegistry_Errors(t *testing.T) {
	reg := puzzle.NewRegistry()
	require.ErrorIs(t, reg.Register(0, constant(0)), puzzle.ErrInvalidDay)
	require.ErrorIs(t, reg.Register(26, constant(0)), puzzle.ErrInvalidDay)
	require.Error(t, reg.Register(3, nil))

	require.NoError(t, reg.Register(3, constant(3)))
	require.ErrorIs(t, reg.Register(3, constant(3)), puzzle.ErrDuplicateDay)
	require.Panics(t, func() { reg.MustRegister(3, constant(3)) })
}
