package puzzle_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/puzzle"
)

func newRunner(t *testing.T) (*puzzle.Runner, *bytes.Buffer, *test.Hook) {
	t.Helper()
	reg := puzzle.NewRegistry()
	reg.MustRegister(1, func(in string) (puzzle.Answers, error) {
		return puzzle.Both(uint64(len(in)), 42), nil
	})
	reg.MustRegister(2, func(string) (puzzle.Answers, error) {
		return puzzle.Answers{}, puzzle.Malformed("bad line")
	})

	logger, hook := test.NewNullLogger()
	var out bytes.Buffer

	return puzzle.NewRunner(reg, puzzle.WithLogger(logger), puzzle.WithOutput(&out)), &out, hook
}

func TestRunner_Run(t *testing.T) {
	r, out, hook := newRunner(t)

	ans, err := r.Run(context.Background(), 1, "abcd")
	require.NoError(t, err)
	require.Equal(t, puzzle.Both(4, 42), ans)
	require.Equal(t, "silver: 4\ngold: 42\n", out.String())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.InfoLevel, entry.Level)
	require.Equal(t, 1, entry.Data["day"])
	require.Contains(t, entry.Data, "took")
}

func TestRunner_SolverError(t *testing.T) {
	r, out, hook := newRunner(t)

	_, err := r.Run(context.Background(), 2, "")
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
	require.Empty(t, out.String())
	require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestRunner_UnknownDay(t *testing.T) {
	r, _, _ := newRunner(t)
	_, err := r.Run(context.Background(), 9, "")
	require.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestRunner_Cancelled(t *testing.T) {
	r, out, _ := newRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, 1, "x")
	require.True(t, errors.Is(err, context.Canceled))
	require.Empty(t, out.String())
}
