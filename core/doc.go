// Package core defines the graph model consumed by the traced shortest-path engine.
//
// A Graph is a plain adjacency mapping: node ID → (neighbor ID → weight).
// Edges are directed; an undirected connection is written as two edges.
// Weights are int64 and must be non-negative for shortest-path computations.
//
// The package deliberately keeps Graph a map type so callers can build graphs
// with composite literals:
//
//	g := core.Graph{
//	    "A": {"B": 4, "C": 1},
//	    "B": {"A": 4, "C": 2, "D": 5},
//	    "C": {"A": 1, "B": 2, "D": 8},
//	    "D": {"B": 5, "C": 8},
//	}
//
// Determinism:
//
//   - Nodes() and Neighbors() return IDs sorted lexicographically, so every
//     algorithm built on top of them observes the same order on every run.
//   - Validate() reports violations in (from, to) order.
//
// Distances:
//
//   - Distances maps node ID → best-known distance.
//   - Infinity (math.MaxInt64) marks a node with no known path.
//
// Errors:
//
//	ErrDanglingEdge   - an edge points to a node that is not a key of the Graph.
//	ErrNegativeWeight - an edge carries a weight below zero.
//	ErrEmptyGraph     - a decoded graph document contains no nodes.
//	ErrBadWeight      - a decoded weight is not an integer (2.5, "3", ...).
//
// Decoding:
//
//	Decode and Load accept YAML or JSON documents of the same mapping shape.
//	Nodes that occur only as edge targets are NOT added implicitly; such edges
//	stay dangling so Validate (or the engine) can report them.
package core
