package mst

import "errors"

// ErrInvalidGraph indicates that Kruskal requires an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("mst: requires undirected, weighted graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("mst: graph is disconnected")
