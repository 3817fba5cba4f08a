// Package day03 picks batteries from each bank to maximise joltage.
package day03

import (
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/aoc2025/grid"
	"github.com/katalvlaran/aoc2025/puzzle"
)

const (
	silverPicks = 2
	goldPicks   = 12
)

// Parse reads one bank of digits per line into a grid, one bank per row.
func Parse(input string) (*grid.Grid[uint8], error) {
	g, err := grid.FromText(input, func(r rune, pos grid.Pos) (uint8, error) {
		if r < '0' || r > '9' {
			return 0, puzzle.Malformed("day03: %q at %v", r, pos)
		}

		return uint8(r - '0'), nil
	})

	return g, puzzle.AsMalformed(err)
}

// MaxJoltage returns the largest number formed by k digits of bank taken in
// order. For every output digit it picks the first maximum in the window
// that still leaves enough digits for the rest.
func MaxJoltage[D constraints.Unsigned](bank []D, k int) (uint64, bool) {
	if k <= 0 || k > len(bank) {
		return 0, false
	}
	var (
		out   uint64
		start int
	)
	for i := 0; i < k; i++ {
		last := len(bank) - (k - i)
		best := start
		for j := start + 1; j <= last; j++ {
			if bank[j] > bank[best] {
				best = j
			}
		}
		out = out*10 + uint64(bank[best])
		start = best + 1
	}

	return out, true
}

// TotalJoltage sums MaxJoltage over every row of banks.
func TotalJoltage(banks *grid.Grid[uint8], k int) (uint64, error) {
	if k > banks.Width() {
		return 0, puzzle.Malformed("day03: banks of %d batteries cannot supply %d", banks.Width(), k)
	}
	var sum uint64
	for row := range banks.Height() {
		j, _ := MaxJoltage(slices.Collect(banks.Row(row)), k)
		sum += j
	}

	return sum, nil
}

// Solve parses the input and answers both parts. Banks shorter than twelve
// batteries only have a silver answer.
func Solve(input string) (puzzle.Answers, error) {
	banks, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}
	silver, err := TotalJoltage(banks, silverPicks)
	if err != nil {
		return puzzle.Answers{}, err
	}
	if banks.Width() < goldPicks {
		return puzzle.SilverOnly(silver), nil
	}
	gold, err := TotalJoltage(banks, goldPicks)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Both(silver, gold), nil
}
