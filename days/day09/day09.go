// Package day09 finds the largest rectangle with red tiles in two opposite
// corners, first anywhere and then inside the red and green loop.
package day09

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/grid"
	"github.com/katalvlaran/aoc2025/gridgraph"
	"github.com/katalvlaran/aoc2025/puzzle"
)

// Point is a red tile.
type Point struct {
	X, Y int64
}

// Area returns the tile count of the rectangle with corners p and q.
func (p Point) Area(q Point) uint64 {
	return uint64(absDiff(p.X, q.X)+1) * uint64(absDiff(p.Y, q.Y)+1)
}

func absDiff(a, b int64) int64 {
	if a < b {
		return b - a
	}

	return a - b
}

// Parse reads one "x,y" red tile per line, in loop order.
func Parse(input string) ([]Point, error) {
	var out []Point
	for i, line := range puzzle.Lines(input) {
		xs, ys, ok := strings.Cut(line, ",")
		x, err1 := strconv.ParseInt(xs, 10, 64)
		y, err2 := strconv.ParseInt(ys, 10, 64)
		if !ok || err1 != nil || err2 != nil {
			return nil, puzzle.Malformed("day09: line %d: %q", i+1, line)
		}
		out = append(out, Point{X: x, Y: y})
	}

	return out, nil
}

// Silver returns the largest rectangle spanned by any two red tiles.
func Silver(points []Point) uint64 {
	var best uint64
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			best = max(best, points[i].Area(points[j]))
		}
	}

	return best
}

type cell uint8

const (
	open cell = iota
	wall
)

// axis compresses one coordinate axis. Real coordinate k maps to the odd
// index 2k+1; even indices stand for the gaps between them, including a
// padding gap on each side.
type axis []int64

func newAxis(values []int64) axis {
	a := slices.Clone(values)
	slices.Sort(a)

	return slices.Compact(a)
}

func (a axis) index(v int64) int {
	i, _ := slices.BinarySearch(a, v)

	return 2*i + 1
}

func (a axis) size() int { return 2*len(a) + 1 }

// floor is the compressed plan with a prefix sum over outside cells.
type floor struct {
	xs, ys  axis
	outside *grid.Grid[int] // (w+1)×(h+1) prefix sums
}

func newFloor(points []Point) (*floor, error) {
	f := &floor{}
	xv := make([]int64, len(points))
	yv := make([]int64, len(points))
	for i, p := range points {
		xv[i], yv[i] = p.X, p.Y
	}
	f.xs, f.ys = newAxis(xv), newAxis(yv)

	plan, err := grid.New[cell](f.xs.size(), f.ys.size())
	if err != nil {
		return nil, err
	}
	for i, p := range points {
		q := points[(i+1)%len(points)]
		if p.X != q.X && p.Y != q.Y {
			return nil, puzzle.Malformed("day09: %v and %v are not on a line", p, q)
		}
		c0, c1 := f.xs.index(p.X), f.xs.index(q.X)
		r0, r1 := f.ys.index(p.Y), f.ys.index(q.Y)
		for c := min(c0, c1); c <= max(c0, c1); c++ {
			for r := min(r0, r1); r <= max(r0, r1); r++ {
				plan.Set(c, r, wall)
			}
		}
	}

	// the padded border is always outside the loop
	outside, err := gridgraph.FloodFill(plan, grid.Pos{}, grid.Conn4, func(c cell) bool { return c == open })
	if err != nil {
		return nil, err
	}

	w, h := plan.Width(), plan.Height()
	f.outside = grid.Must(grid.New[int](w+1, h+1))
	for pos, out := range outside.All() {
		v := 0
		if out {
			v = 1
		}
		left, _ := f.outside.At(pos.Col, pos.Row+1)
		up, _ := f.outside.At(pos.Col+1, pos.Row)
		diag, _ := f.outside.At(pos.Col, pos.Row)
		f.outside.Set(pos.Col+1, pos.Row+1, v+left+up-diag)
	}

	return f, nil
}

// inside reports whether the rectangle with corners p and q has no outside
// cell.
func (f *floor) inside(p, q Point) bool {
	c0, c1 := f.xs.index(p.X), f.xs.index(q.X)
	r0, r1 := f.ys.index(p.Y), f.ys.index(q.Y)
	c0, c1 = min(c0, c1), max(c0, c1)+1
	r0, r1 = min(r0, r1), max(r0, r1)+1

	sum := func(c, r int) int {
		v, _ := f.outside.At(c, r)
		return v
	}

	return sum(c1, r1)-sum(c0, r1)-sum(c1, r0)+sum(c0, r0) == 0
}

// Gold returns the largest rectangle spanned by two red tiles that lies
// entirely on red or green tiles.
func Gold(points []Point) (uint64, error) {
	if len(points) < 2 {
		return 0, nil
	}
	f, err := newFloor(points)
	if err != nil {
		return 0, err
	}
	var best uint64
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if a := points[i].Area(points[j]); a > best && f.inside(points[i], points[j]) {
				best = a
			}
		}
	}

	return best, nil
}

// Solve parses the input and answers both parts.
func Solve(input string) (puzzle.Answers, error) {
	points, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}
	gold, err := Gold(points)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Both(Silver(points), gold), nil
}
