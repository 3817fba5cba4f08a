// Package mst builds minimum spanning trees with Kruskal's algorithm over an
// undirected, weighted *core.Graph, and exposes the union-find structure it
// uses so callers can drive merges themselves.
//
// Kruskal returns the tree edges in the order they were merged. The last
// edge is therefore the one that finally connects the graph, which is what
// "when does everything become one circuit" questions need.
package mst
