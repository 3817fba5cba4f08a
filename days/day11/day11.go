// Package day11 counts data paths through a rack of devices.
package day11

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2025/core"
	"github.com/katalvlaran/aoc2025/dfs"
	"github.com/katalvlaran/aoc2025/puzzle"
)

// Device names with a fixed role.
const (
	You    = "you"
	Out    = "out"
	Server = "svr"
	DAC    = "dac"
	FFT    = "fft"
)

// Parse reads "name: out1 out2 ..." lines into a directed graph. Listing
// the same output twice gives two distinct cables.
func Parse(input string) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	for i, line := range puzzle.Lines(input) {
		name, outs, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, puzzle.Malformed("day11: line %d: %q", i+1, line)
		}
		if err := g.AddVertex(name); err != nil {
			return nil, err
		}
		for _, to := range strings.Fields(outs) {
			if _, err := g.AddEdge(name, to, 0); err != nil {
				return nil, fmt.Errorf("day11: line %d: %w: %w", i+1, puzzle.ErrMalformedInput, err)
			}
		}
	}

	return g, nil
}

// count is dfs.CountPaths with a missing start device counting as no paths.
func count(g *core.Graph, from, to string) (uint64, error) {
	n, err := dfs.CountPaths(g, from, to)
	if errors.Is(err, dfs.ErrStartVertexNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("day11: %w", err)
	}

	return n, nil
}

// Silver counts the paths from you to out.
func Silver(g *core.Graph) (uint64, error) { return count(g, You, Out) }

// Gold counts the paths from svr to out that pass through both dac and fft,
// in either order.
func Gold(g *core.Graph) (uint64, error) {
	var total uint64
	for _, via := range [][2]string{{FFT, DAC}, {DAC, FFT}} {
		product := uint64(1)
		for _, leg := range [][2]string{{Server, via[0]}, {via[0], via[1]}, {via[1], Out}} {
			n, err := count(g, leg[0], leg[1])
			if err != nil {
				return 0, err
			}
			product *= n
		}
		total += product
	}

	return total, nil
}

// Solve parses the input and answers both parts.
func Solve(input string) (puzzle.Answers, error) {
	g, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}
	silver, err := Silver(g)
	if err != nil {
		return puzzle.Answers{}, err
	}
	gold, err := Gold(g)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Both(silver, gold), nil
}
