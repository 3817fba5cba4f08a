// Package day08 wires junction boxes in 3D space into circuits, shortest
// connections first.
package day08

import (
	"cmp"
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/core"
	"github.com/katalvlaran/aoc2025/mst"
	"github.com/katalvlaran/aoc2025/puzzle"
)

// Connections is how many closest pairs the silver part joins.
const Connections = 1000

// Point is a junction box position.
type Point struct {
	X, Y, Z int64
}

// Dist2 returns the squared euclidean distance between p and q.
func (p Point) Dist2(q Point) int64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z

	return dx*dx + dy*dy + dz*dz
}

// Parse reads one "x,y,z" point per line.
func Parse(input string) ([]Point, error) {
	var out []Point
	for i, line := range puzzle.Lines(input) {
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, puzzle.Malformed("day08: line %d: %q", i+1, line)
		}
		var xyz [3]int64
		for k, s := range parts {
			v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return nil, puzzle.Malformed("day08: line %d: %q", i+1, line)
			}
			xyz[k] = v
		}
		out = append(out, Point{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}

	return out, nil
}

type pair struct {
	i, j int
	d2   int64
}

// sortedPairs returns every unordered pair of points ordered by distance,
// ties broken by index.
func sortedPairs(points []Point) []pair {
	out := make([]pair, 0, len(points)*(len(points)-1)/2)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			out = append(out, pair{i: i, j: j, d2: points[i].Dist2(points[j])})
		}
	}
	slices.SortFunc(out, func(a, b pair) int {
		if c := cmp.Compare(a.d2, b.d2); c != 0 {
			return c
		}
		if c := cmp.Compare(a.i, b.i); c != 0 {
			return c
		}

		return cmp.Compare(a.j, b.j)
	})

	return out
}

// Silver joins the n closest pairs and multiplies the sizes of the three
// largest circuits. With fewer than three circuits, the product covers
// the ones that exist. A non-positive n joins nothing.
func Silver(points []Point, n int) uint64 {
	pairs := sortedPairs(points)
	n = max(0, min(n, len(pairs)))

	circuits := mst.NewDisjointSet(len(points))
	for _, p := range pairs[:n] {
		circuits.Union(p.i, p.j)
	}

	sizes := circuits.Sizes()
	slices.SortFunc(sizes, func(a, b int) int { return cmp.Compare(b, a) })
	product := uint64(1)
	for _, s := range sizes[:min(3, len(sizes))] {
		product *= uint64(s)
	}

	return product
}

// Gold keeps connecting until every box is on one circuit and multiplies
// the X coordinates of the last pair joined.
//
// The spanning tree is computed over the shortest edges only. If they do
// not connect every box, the candidate set doubles and the tree is rebuilt;
// a connected prefix of the sorted edges always contains the full tree.
func Gold(points []Point) (uint64, error) {
	if len(points) < 2 {
		return 0, puzzle.Malformed("day08: need at least two junction boxes")
	}
	pairs := sortedPairs(points)
	limit := min(len(pairs), 4*len(points))
	for {
		tree, err := spanningTree(len(points), pairs[:limit])
		if errors.Is(err, mst.ErrDisconnected) && limit < len(pairs) {
			limit = min(2*limit, len(pairs))
			continue
		}
		if err != nil {
			return 0, err
		}

		last := tree[len(tree)-1]
		i, _ := strconv.Atoi(last.From)
		j, _ := strconv.Atoi(last.To)

		return uint64(points[i].X * points[j].X), nil
	}
}

func spanningTree(n int, pairs []pair) ([]core.Edge, error) {
	g := core.NewGraph(core.WithWeighted())
	for i := range n {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}
	for _, p := range pairs {
		if _, err := g.AddEdge(strconv.Itoa(p.i), strconv.Itoa(p.j), p.d2); err != nil {
			return nil, err
		}
	}
	tree, _, err := mst.Kruskal(g)

	return tree, err
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

	return puzzle.Both(Silver(points, Connections), gold), nil
}
