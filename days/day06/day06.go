// Package day06 evaluates a worksheet of vertically written arithmetic
// problems.
package day06

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/aoc2025/grid"
	"github.com/katalvlaran/aoc2025/puzzle"
)

// Op is the operator under a problem.
type Op byte

const (
	// Add sums the operands.
	Add Op = '+'
	// Multiply takes the product of the operands.
	Multiply Op = '*'
)

// identity is the starting accumulator for op.
func (op Op) identity() uint64 {
	if op == Multiply {
		return 1
	}

	return 0
}

func (op Op) apply(acc, n uint64) uint64 {
	if op == Multiply {
		return acc * n
	}

	return acc + n
}

// Worksheet keeps the raw number lines next to the operator row.
type Worksheet struct {
	Lines []string // number lines, without the operator line
	Ops   []Op
}

// Parse splits the worksheet into number lines and operators. The operator
// line is the last non-empty line.
func Parse(input string) (Worksheet, error) {
	lines := puzzle.Lines(input)
	if len(lines) < 2 {
		return Worksheet{}, puzzle.Malformed("day06: need number lines and an operator line")
	}
	var ops []Op
	for _, f := range strings.Fields(lines[len(lines)-1]) {
		switch Op(f[0]) {
		case Add, Multiply:
			if len(f) != 1 {
				return Worksheet{}, puzzle.Malformed("day06: operator %q", f)
			}
			ops = append(ops, Op(f[0]))
		default:
			return Worksheet{}, puzzle.Malformed("day06: operator %q", f)
		}
	}
	if len(ops) == 0 {
		return Worksheet{}, puzzle.Malformed("day06: no operators")
	}

	return Worksheet{Lines: lines[:len(lines)-1], Ops: ops}, nil
}

// Numbers reads the whitespace separated numbers into a grid with one column
// per problem.
func (ws Worksheet) Numbers() (*grid.Grid[uint64], error) {
	var cells []uint64
	for i, line := range ws.Lines {
		fields := strings.Fields(line)
		if len(fields) != len(ws.Ops) {
			return nil, puzzle.Malformed("day06: line %d has %d numbers, want %d", i+1, len(fields), len(ws.Ops))
		}
		for _, f := range fields {
			n, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return nil, puzzle.Malformed("day06: line %d: %q", i+1, f)
			}
			cells = append(cells, n)
		}
	}

	g, err := grid.FromSlice(cells, len(ws.Ops), len(ws.Lines))

	return g, puzzle.AsMalformed(err)
}

// Silver solves every problem column by column and sums the results.
func Silver(ws Worksheet) (uint64, error) {
	nums, err := ws.Numbers()
	if err != nil {
		return 0, err
	}
	var total uint64
	for col, op := range ws.Ops {
		acc := op.identity()
		for n := range nums.Col(col) {
			acc = op.apply(acc, n)
		}
		total += acc
	}

	return total, nil
}

// Digits lays the number lines out as a character grid, padding short lines
// with spaces so columns line up.
func (ws Worksheet) Digits() (*grid.Grid[rune], error) {
	width := 0
	for _, line := range ws.Lines {
		width = max(width, len([]rune(line)))
	}
	cells := make([]rune, 0, width*len(ws.Lines))
	for _, line := range ws.Lines {
		rs := []rune(line)
		cells = append(cells, rs...)
		for range width - len(rs) {
			cells = append(cells, ' ')
		}
	}

	g, err := grid.FromSlice(cells, width, len(ws.Lines))

	return g, puzzle.AsMalformed(err)
}

// Gold reads each character column top to bottom as one number. Columns
// without digits separate problems.
func Gold(ws Worksheet) (uint64, error) {
	digits, err := ws.Digits()
	if err != nil {
		return 0, err
	}
	cols := digits.Transposed()

	var (
		total   uint64
		problem int
		acc     = ws.Ops[0].identity()
	)
	for row := range cols.Height() {
		var (
			n   uint64
			seen bool
		)
		for r := range cols.Row(row) {
			switch {
			case unicode.IsDigit(r):
				n = n*10 + uint64(r-'0')
				seen = true
			case r != ' ':
				return 0, puzzle.Malformed("day06: %q in number column", r)
			}
		}
		if !seen {
			total += acc
			problem++
			if problem >= len(ws.Ops) {
				return total, nil
			}
			acc = ws.Ops[problem].identity()
			continue
		}
		acc = ws.Ops[problem].apply(acc, n)
	}

	return total + acc, nil
}

// Solve parses the input and answers both parts.
func Solve(input string) (puzzle.Answers, error) {
	ws, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}
	silver, err := Silver(ws)
	if err != nil {
		return puzzle.Answers{}, err
	}
	gold, err := Gold(ws)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Both(silver, gold), nil
}
