package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/core"
	"github.com/katalvlaran/aoc2025/dfs"
)

func ExampleCountPaths() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("svr", "left", 0)
	_, _ = g.AddEdge("svr", "right", 0)
	_, _ = g.AddEdge("left", "out", 0)
	_, _ = g.AddEdge("right", "out", 0)

	n, err := dfs.CountPaths(g, "svr", "out")
	fmt.Println(n, err)
	// Output: 2 <nil>
}
