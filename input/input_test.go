package input_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/input"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestRead_Empty(t *testing.T) {
	_, err := input.Read("")
	require.ErrorIs(t, err, input.ErrNoInput)
}

func TestRead_Stdin(t *testing.T) {
	got, err := input.Read("-", input.WithStdin(strings.NewReader("L68\nR48\n")))
	require.NoError(t, err)
	require.Equal(t, "L68\nR48\n", got)
}

func TestRead_Absolute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day01.txt")
	write(t, path, "abs")

	got, err := input.Read(path)
	require.NoError(t, err)
	require.Equal(t, "abs", got)

	_, err = input.Read(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, input.ErrNotFound)
}

func TestResolve_Priority(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	write(t, filepath.Join(dir, "inputs", "day02.txt"), "from inputs")
	got, err := input.Resolve("day02.txt")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("inputs", "day02.txt"), got)

	// a file relative to the working directory wins over the search dirs
	write(t, filepath.Join(dir, "day02.txt"), "from cwd")
	got, err = input.Resolve("day02.txt")
	require.NoError(t, err)
	require.Equal(t, "day02.txt", got)

	text, err := input.Read("day02.txt")
	require.NoError(t, err)
	require.Equal(t, "from cwd", text)
}

func TestResolve_SearchDirs(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "puzzles", "day03.txt"), "x")

	got, err := input.Resolve("day03.txt", input.WithSearchDirs(filepath.Join(dir, "puzzles")))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "puzzles", "day03.txt"), got)

	_, err = input.Resolve("day03.txt", input.WithSearchDirs())
	require.ErrorIs(t, err, input.ErrNotFound)
}

func TestResolve_Directory(t *testing.T) {
	_, err := input.Resolve(t.TempDir())
	require.ErrorIs(t, err, input.ErrNotFound)
}
