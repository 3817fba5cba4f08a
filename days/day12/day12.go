// Package day12 decides which regions under the tree can hold their
// presents.
package day12

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/grid"
	"github.com/katalvlaran/aoc2025/gridgraph"
	"github.com/katalvlaran/aoc2025/puzzle"
)

// Shape is one present, drawn with '#' for occupied cells.
type Shape struct {
	Index int
	Cells *grid.Grid[bool]
	Area  int
}

// Region is a WxH area and how many presents of each shape it must hold.
type Region struct {
	Width, Height int
	Counts        []int
}

// Puzzle is the parsed input.
type Puzzle struct {
	Shapes  []Shape
	Regions []Region
}

func filled(b bool) bool { return b }

// Parse reads the shape blocks ("N:" followed by rows of '#' and '.') and
// then the "WxH: c0 c1 ..." region lines. Blocks are separated by blank
// lines.
func Parse(input string) (Puzzle, error) {
	var p Puzzle
	lines := puzzle.Lines(input)
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		head, rest, ok := strings.Cut(line, ":")
		if !ok {
			return Puzzle{}, puzzle.Malformed("day12: line %d: %q", i+1, line)
		}
		if strings.Contains(head, "x") {
			r, err := parseRegion(head, rest)
			if err != nil {
				return Puzzle{}, puzzle.Malformed("day12: line %d: %v", i+1, err)
			}
			p.Regions = append(p.Regions, r)
			continue
		}

		idx, err := strconv.Atoi(head)
		if err != nil || idx != len(p.Shapes) || strings.TrimSpace(rest) != "" {
			return Puzzle{}, puzzle.Malformed("day12: line %d: shape header %q", i+1, line)
		}
		var rows []string
		for i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
			i++
			rows = append(rows, strings.TrimSpace(lines[i]))
		}
		s, err := parseShape(idx, strings.Join(rows, "\n"))
		if err != nil {
			return Puzzle{}, err
		}
		p.Shapes = append(p.Shapes, s)
	}

	for _, r := range p.Regions {
		if len(r.Counts) > len(p.Shapes) {
			return Puzzle{}, puzzle.Malformed("day12: region %dx%d lists %d shapes, only %d defined",
				r.Width, r.Height, len(r.Counts), len(p.Shapes))
		}
	}

	return p, nil
}

func parseShape(idx int, text string) (Shape, error) {
	cells, err := grid.FromText(text, func(r rune, pos grid.Pos) (bool, error) {
		switch r {
		case '#':
			return true, nil
		case '.':
			return false, nil
		}

		return false, puzzle.Malformed("day12: shape %d: %q at %v", idx, r, pos)
	})
	if err != nil {
		return Shape{}, fmt.Errorf("day12: shape %d: %w", idx, puzzle.AsMalformed(err))
	}
	if pieces := gridgraph.Components(cells, grid.Conn8, filled); len(pieces) != 1 {
		return Shape{}, puzzle.Malformed("day12: shape %d has %d pieces", idx, len(pieces))
	}

	return Shape{Index: idx, Cells: cells, Area: cells.Count(filled)}, nil
}

func parseRegion(size, counts string) (Region, error) {
	ws, hs, ok := strings.Cut(size, "x")
	w, err1 := strconv.Atoi(ws)
	h, err2 := strconv.Atoi(hs)
	if !ok || err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return Region{}, puzzle.Malformed("size %q", size)
	}
	r := Region{Width: w, Height: h}
	for _, f := range strings.Fields(counts) {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return Region{}, puzzle.Malformed("count %q", f)
		}
		r.Counts = append(r.Counts, n)
	}

	return r, nil
}

// Fits reports whether the presents' combined area is no larger than the
// region. Shapes are assumed to pack without gaps.
func Fits(shapes []Shape, r Region) bool {
	need := 0
	for i, n := range r.Counts {
		need += n * shapes[i].Area
	}

	return need <= r.Width*r.Height
}

// Silver counts regions that can hold all their presents.
func Silver(p Puzzle) uint64 {
	var count uint64
	for _, r := range p.Regions {
		if Fits(p.Shapes, r) {
			count++
		}
	}

	return count
}

// Solve parses the input and answers the only part of the day.
func Solve(input string) (puzzle.Answers, error) {
	p, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.SilverOnly(Silver(p)), nil
}
