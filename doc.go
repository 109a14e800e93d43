// Package pathtrace computes single-source shortest paths with a recorded,
// replayable history of every algorithmic decision.
//
// What is in here:
//
//	core/          - Graph (node → neighbor → weight), Distances, Infinity,
//	                 validation and YAML/JSON decoding
//	trace/         - visit_node / relax_edge events, Recorder, invariant
//	                 checker, stable JSON and hashing
//	dijkstra/      - Engine: lazy-deletion Dijkstra that emits a trace
//	cmd/pathtrace/ - command-line front end (run, demo, validate)
//
// Quick example:
//
//	    A──4──B
//	    │    ╱│
//	    1  2  5
//	    │╱    │
//	    C──8──D
//
//	g := core.Graph{
//	    "A": {"B": 4, "C": 1},
//	    "B": {"A": 4, "C": 2, "D": 5},
//	    "C": {"A": 1, "B": 2, "D": 8},
//	    "D": {"B": 5, "C": 8},
//	}
//	dist, steps, _ := dijkstra.NewEngine(g).Run("A")
//	// dist  = {A:0 B:3 C:1 D:8}
//	// steps = visit A, relax A→B, relax A→C, visit C, relax C→B, relax C→D,
//	//         visit B, relax B→D, visit D
//
// Weights must be non-negative. Each snapshot inside a trace is an
// independent copy, so a visualizer can replay the run in any order.
package pathtrace
