package trace

import (
	"github.com/katalvlaran/pathtrace/core"
)

// Kind discriminates trace events. The string values are part of the JSON
// encoding; do not rename.
type Kind string

const (
	// KindVisitNode marks a node finalized by the engine.
	KindVisitNode Kind = "visit_node"

	// KindRelaxEdge marks a strict distance improvement along an edge.
	KindRelaxEdge Kind = "relax_edge"
)

// Event is a single recorded step.
//
// Field usage by kind:
//
//	visit_node: Node, Distances, Visited
//	relax_edge: From, To, Distance, Distances
type Event struct {
	Kind Kind

	// Node is the finalized node (visit_node).
	Node string

	// From and To are the relaxed edge endpoints (relax_edge).
	From string
	To   string

	// Distance is the improved distance of To (relax_edge).
	Distance int64

	// Distances is a snapshot of the whole distance table.
	Distances core.Distances

	// Visited is the sorted visited set, including Node (visit_node).
	Visited []string
}

// Trace is an ordered sequence of events.
type Trace []Event

// Clone returns a deep copy of e.
func (e Event) Clone() Event {
	out := e
	out.Distances = e.Distances.Clone()
	if e.Visited != nil {
		out.Visited = append([]string(nil), e.Visited...)
	}

	return out
}

// Clone returns a deep copy of t.
func (t Trace) Clone() Trace {
	if t == nil {
		return nil
	}
	out := make(Trace, len(t))
	for i := range t {
		out[i] = t[i].Clone()
	}

	return out
}

// Visits returns the visited nodes in visit order.
func (t Trace) Visits() []string {
	var order []string
	for i := range t {
		if t[i].Kind == KindVisitNode {
			order = append(order, t[i].Node)
		}
	}

	return order
}

// Summary aggregates a trace.
type Summary struct {
	Visits      int
	Relaxations int
	// Order lists visited nodes in visit order.
	Order []string
}

// Summarize counts events by kind.
func Summarize(t Trace) Summary {
	s := Summary{Order: t.Visits()}
	for i := range t {
		switch t[i].Kind {
		case KindVisitNode:
			s.Visits++
		case KindRelaxEdge:
			s.Relaxations++
		}
	}

	return s
}

// Split cuts a cumulative multi-run trace into per-run traces. A run starts at
// every visit_node event whose visited set holds exactly one node.
func Split(t Trace) []Trace {
	var runs []Trace
	start := -1
	for i := range t {
		if t[i].Kind == KindVisitNode && len(t[i].Visited) == 1 {
			if start >= 0 {
				runs = append(runs, t[start:i])
			}
			start = i
		}
	}
	if start >= 0 {
		runs = append(runs, t[start:])
	}

	return runs
}
