// Package dijkstra provides a traced implementation of Dijkstra's
// single-source shortest-path algorithm on graphs with non-negative weights.
//
// Overview:
//
//   - Engine owns the graph reference and computes, from a start node, the
//     minimal distance to every node (core.Infinity when unreachable).
//   - While running it records a trace.Trace: one visit_node event per
//     finalized node and one relax_edge event per strict distance improvement.
//     Every event carries an independent snapshot of the distance table, so the
//     trace can be replayed step by step by a visualizer.
//
// Algorithm:
//
//   - Distances start at Infinity, the start node at 0; the frontier holds (0, start).
//   - Pop the smallest (distance, node) pair. Ties are broken by node ID, so runs
//     are reproducible.
//   - A popped node that is already visited is a stale entry and is dropped
//     silently ("lazy decrease-key": improvements push new entries instead of
//     updating old ones).
//   - Otherwise the node is marked visited, a visit_node event is recorded, and
//     each unvisited neighbor (in ID order) is relaxed. Only a strictly smaller
//     candidate updates the table; equal candidates do nothing.
//   - The run ends when the frontier is empty.
//
// Node lifecycle:
//
//	unseen (Infinity) → frontier (finite, pending) → visited (final)
//
// The start node begins directly in the frontier. No node leaves visited.
//
// Trace history:
//
//   - By default each Run returns only its own events and the engine keeps the
//     latest run as History().
//   - WithCumulativeTrace() keeps appending across runs; Run then returns the
//     whole history. trace.Split recovers the per-run traces.
//   - A failed run never contributes events.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrNilGraph:          the engine was built over a nil graph.
//   - ErrUnknownStartNode:  the start node is not a graph key; reported before any work.
//   - core.ErrDanglingEdge: an edge leaving a visited node targets a non-node.
//   - core.ErrNegativeWeight: an edge leaving a visited node has weight < 0.
//   - ErrInvalidGraph:      WithStrictValidation() found violations anywhere in the
//     graph; the wrapped *multierror.Error lists all of them.
//
// Without strict validation, edges leaving unreachable nodes are never inspected.
//
// Concurrency:
//
//   - Run is synchronous and single-threaded. An Engine must not be shared by
//     concurrent callers; build one Engine per goroutine. Metrics may be shared.
//
// Complexity:
//
//   - Time:  O((V + E) log E); each edge pushes at most one frontier entry.
//   - Space: O(V + E) working state plus O(V) per trace event snapshot.
//
// Example:
//
//	g := core.Graph{
//	    "A": {"B": 4, "C": 1},
//	    "B": {"A": 4, "C": 2, "D": 5},
//	    "C": {"A": 1, "B": 2, "D": 8},
//	    "D": {"B": 5, "C": 8},
//	}
//	dist, steps, err := dijkstra.NewEngine(g).Run("A")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist["D"], len(steps)) // 8 9
package dijkstra
