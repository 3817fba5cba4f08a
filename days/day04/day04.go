// Package day04 finds paper rolls a forklift can reach.
package day04

import (
	"github.com/katalvlaran/aoc2025/grid"
	"github.com/katalvlaran/aoc2025/puzzle"
)

// Tile is one cell of the warehouse floor.
type Tile uint8

const (
	// Empty is a bare floor cell, '.'.
	Empty Tile = iota
	// Roll is a paper roll, '@'.
	Roll
)

func (t Tile) String() string {
	if t == Roll {
		return "@"
	}

	return "."
}

// crowded is the neighbour count at which a roll can no longer be reached.
const crowded = 4

func isRoll(t Tile) bool { return t == Roll }

// Parse reads the floor plan of '.' and '@'.
func Parse(input string) (*grid.Grid[Tile], error) {
	g, err := grid.FromText(input, func(r rune, pos grid.Pos) (Tile, error) {
		switch r {
		case '.':
			return Empty, nil
		case '@':
			return Roll, nil
		}

		return Empty, puzzle.Malformed("day04: tile %q at %v", r, pos)
	})

	return g, puzzle.AsMalformed(err)
}

// Accessible returns the rolls with fewer than four rolls among their eight
// neighbours, in row-major order.
func Accessible(floor *grid.Grid[Tile]) []grid.Pos {
	var out []grid.Pos
	for pos, t := range floor.All() {
		if t != Roll {
			continue
		}
		if floor.Entry(pos.Col, pos.Row).CountNeighbors(grid.Conn8, isRoll) < crowded {
			out = append(out, pos)
		}
	}

	return out
}

// RemoveAll repeatedly removes every accessible roll until none is left to
// remove and returns how many were taken. floor is modified.
func RemoveAll(floor *grid.Grid[Tile]) uint64 {
	var removed uint64
	for {
		batch := Accessible(floor)
		if len(batch) == 0 {
			return removed
		}
		for _, pos := range batch {
			*floor.EntryMut(pos.Col, pos.Row).AtOffset(0, 0) = Empty
		}
		removed += uint64(len(batch))
	}
}

// Solve parses the input and answers both parts.
func Solve(input string) (puzzle.Answers, error) {
	floor, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}
	silver := uint64(len(Accessible(floor)))

	return puzzle.Both(silver, RemoveAll(floor)), nil
}
