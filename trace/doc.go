// Package trace records and inspects the step-by-step history of a
// shortest-path run.
//
// A Trace is an ordered, append-only list of Events of two kinds:
//
//   - KindVisitNode ("visit_node"): a node was popped from the frontier and
//     finalized. Carries the node, a snapshot of the distance table and the
//     sorted visited set at that instant.
//   - KindRelaxEdge ("relax_edge"): an edge strictly improved its target's
//     distance. Carries From, To, the new Distance and a snapshot of the
//     distance table after the update.
//
// Every snapshot is an independent copy; mutating the engine's working state
// (or another event) never changes an event already recorded.
//
// Tooling:
//
//   - Recorder builds traces with snapshot copying.
//   - Check / CheckAgainst verify the algorithm's observable invariants
//     (visit-once, growing visited set, monotone distances, strict relaxation).
//   - MarshalJSON produces a stable encoding with Infinity rendered as null;
//     Hash digests that encoding for reproducibility checks.
//   - Split and Summarize help consumers of cumulative multi-run traces.
package trace
