// Package days wires every solved day into a puzzle.Registry.
package days

import (
	"github.com/katalvlaran/aoc2025/days/day01"
	"github.com/katalvlaran/aoc2025/days/day02"
	"github.com/katalvlaran/aoc2025/days/day03"
	"github.com/katalvlaran/aoc2025/days/day04"
	"github.com/katalvlaran/aoc2025/days/day05"
	"github.com/katalvlaran/aoc2025/days/day06"
	"github.com/katalvlaran/aoc2025/days/day07"
	"github.com/katalvlaran/aoc2025/days/day08"
	"github.com/katalvlaran/aoc2025/days/day09"
	"github.com/katalvlaran/aoc2025/days/day11"
	"github.com/katalvlaran/aoc2025/days/day12"
	"github.com/katalvlaran/aoc2025/puzzle"
)

var solvers = map[int]puzzle.Solver{
	1:  day01.Solve,
	2:  day02.Solve,
	3:  day03.Solve,
	4:  day04.Solve,
	5:  day05.Solve,
	6:  day06.Solve,
	7:  day07.Solve,
	8:  day08.Solve,
	9:  day09.Solve,
	11: day11.Solve,
	12: day12.Solve,
}

// Register adds every day to reg.
func Register(reg *puzzle.Registry) error {
	for day, s := range solvers {
		if err := reg.Register(day, s); err != nil {
			return err
		}
	}

	return nil
}

// Registry returns a new registry holding every day.
func Registry() *puzzle.Registry {
	reg := puzzle.NewRegistry()
	if err := Register(reg); err != nil {
		panic(err)
	}

	return reg
}
