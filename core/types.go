package core

import (
	"errors"
	"math"
)

// Sentinel errors for graph contract violations.
var (
	// ErrDanglingEdge indicates an edge whose target is not a node of the graph.
	ErrDanglingEdge = errors.New("core: edge references unknown node")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrEmptyGraph indicates a decoded document that declares no nodes.
	ErrEmptyGraph = errors.New("core: graph has no nodes")
)

// Infinity is the distance sentinel for nodes without a known path.
const Infinity int64 = math.MaxInt64

// Graph is a directed, weighted adjacency mapping.
//
// Graph[u][v] = w declares the edge u→v with weight w. Every node that may be
// reached must appear as a key, even when it has no outgoing edges.
type Graph map[string]map[string]int64

// Distances maps node IDs to their best-known distance from a source.
type Distances map[string]int64

// Clone returns an independent copy of d.
func (d Distances) Clone() Distances {
	if d == nil {
		return nil
	}
	out := make(Distances, len(d))
	for id, dist := range d {
		out[id] = dist
	}

	return out
}

// Reachable reports whether id has a finite distance in d.
func (d Distances) Reachable(id string) bool {
	dist, ok := d[id]

	return ok && dist != Infinity
}

// Add returns a+b, saturating at Infinity. Negative operands are the
// caller's responsibility.
func Add(a, b int64) int64 {
	if a == Infinity || b == Infinity || a > Infinity-b {
		return Infinity
	}

	return a + b
}
