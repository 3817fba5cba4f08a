// Package aoc2025 solves the Advent of Code 2025 puzzles on top of a small
// set of reusable building blocks.
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/       generic rectangular Grid[T]: parsing, bounds-checked access,
//	            relative-offset entries, iteration, transposition, rendering
//	gridgraph/  flood fill and connected components over a Grid
//	core/       thread-safe Graph, Edge types with string vertex IDs
//	dfs/        topological sort and path counting on directed graphs
//	mst/        Kruskal minimum spanning tree and a disjoint-set forest
//	input/      resolve the puzzle input from a path or standard input
//	puzzle/     Answers, Solver, Registry and a logging Runner
//	days/       one package per solved day, plus the registry wiring
//	cmd/advent/ the command line entry point
//
// Quick start:
//
//	go run ./cmd/advent -day 4 inputs/day04.txt
//	cat day04.txt | go run ./cmd/advent -day 4 -
package aoc2025
