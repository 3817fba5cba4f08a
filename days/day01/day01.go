// Package day01 turns a safe dial left and right and counts how often it
// points at zero.
package day01

import (
	"strconv"

	"github.com/katalvlaran/aoc2025/puzzle"
)

const (
	dialSize  = 100
	dialStart = 50
)

// Rotation is one signed turn of the dial; negative turns go left.
type Rotation int

// Parse reads one "L<n>" or "R<n>" rotation per line. Parsing stops at the
// first empty line.
func Parse(input string) ([]Rotation, error) {
	var out []Rotation
	for i, line := range puzzle.Lines(input) {
		if line == "" {
			break
		}
		n, err := strconv.Atoi(line[1:])
		if err != nil || n < 0 {
			return nil, puzzle.Malformed("day01: line %d: %q", i+1, line)
		}
		switch line[0] {
		case 'R':
			out = append(out, Rotation(n))
		case 'L':
			out = append(out, Rotation(-n))
		default:
			return nil, puzzle.Malformed("day01: line %d: direction %q", i+1, line[0])
		}
	}

	return out, nil
}

// Silver counts rotations that leave the dial at zero.
func Silver(rots []Rotation) uint64 {
	var count uint64
	dial := dialStart
	for _, r := range rots {
		dial = mod(dial+int(r), dialSize)
		if dial == 0 {
			count++
		}
	}

	return count
}

// Gold counts every click that lands on zero, including the ones passed
// over in the middle of a rotation.
func Gold(rots []Rotation) uint64 {
	var count uint64
	dial := dialStart
	for _, r := range rots {
		next := dial + int(r)
		switch {
		case next >= dialSize:
			count += uint64(next / dialSize)
		case next <= 0:
			// starting on zero is not a crossing
			if dial != 0 {
				count++
			}
			count += uint64(-next / dialSize)
		}
		dial = mod(next, dialSize)
	}

	return count
}

// Solve parses the input and answers both parts.
func Solve(input string) (puzzle.Answers, error) {
	rots, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Both(Silver(rots), Gold(rots)), nil
}

func mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}

	return a
}
