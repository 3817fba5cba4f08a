// Package dfs provides depth-first algorithms on directed core.Graph values:
// topological ordering and path counting over acyclic graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// CountPaths counts the distinct directed paths between two vertices by
// walking that ordering once.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs
