// Package day07 follows a tachyon beam down through a manifold of splitters.
package day07

import (
	"github.com/katalvlaran/aoc2025/grid"
	"github.com/katalvlaran/aoc2025/puzzle"
)

// Tile is one cell of the manifold.
type Tile uint8

const (
	// Empty lets a beam pass straight down, '.'.
	Empty Tile = iota
	// Start is where the beam enters, 'S'.
	Start
	// Splitter sends the beam to the left and right columns, '^'.
	Splitter
)

func (t Tile) String() string {
	switch t {
	case Start:
		return "S"
	case Splitter:
		return "^"
	}

	return "."
}

// Parse reads the manifold of 'S', '.' and '^'.
func Parse(input string) (*grid.Grid[Tile], error) {
	g, err := grid.FromText(input, func(r rune, pos grid.Pos) (Tile, error) {
		switch r {
		case '.':
			return Empty, nil
		case 'S':
			return Start, nil
		case '^':
			return Splitter, nil
		}

		return Empty, puzzle.Malformed("day07: tile %q at %v", r, pos)
	})

	return g, puzzle.AsMalformed(err)
}

// Beams propagates the beam row by row below the start. It returns the
// number of splitters hit and the number of timelines, where every split
// doubles the timelines of the beam that hit it. Beams leaving the sides
// are dropped.
func Beams(manifold *grid.Grid[Tile]) (splits, timelines uint64, err error) {
	start, ok := manifold.Find(func(t Tile) bool { return t == Start })
	if !ok {
		return 0, 0, puzzle.Malformed("day07: no start tile")
	}

	width := manifold.Width()
	paths := make([]uint64, width)
	paths[start.Col] = 1
	for row := start.Row + 1; row < manifold.Height(); row++ {
		next := make([]uint64, width)
		for col, n := range paths {
			if n == 0 {
				continue
			}
			if t, _ := manifold.At(col, row); t != Splitter {
				next[col] += n
				continue
			}
			splits++
			if col > 0 {
				next[col-1] += n
			}
			if col+1 < width {
				next[col+1] += n
			}
		}
		paths = next
	}
	for _, n := range paths {
		timelines += n
	}

	return splits, timelines, nil
}

// Solve parses the input and answers both parts.
func Solve(input string) (puzzle.Answers, error) {
	manifold, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}
	splits, timelines, err := Beams(manifold)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Both(splits, timelines), nil
}
