package trace

import (
	"sort"

	"github.com/katalvlaran/pathtrace/core"
)

// Recorder accumulates events, copying every snapshot it is handed.
// The zero value is ready to use. A Recorder is not safe for concurrent use.
type Recorder struct {
	events Trace
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Visit appends a visit_node event. visited is copied and sorted.
func (r *Recorder) Visit(node string, dist core.Distances, visited []string) {
	vs := append([]string(nil), visited...)
	sort.Strings(vs)
	r.events = append(r.events, Event{
		Kind:      KindVisitNode,
		Node:      node,
		Distances: dist.Clone(),
		Visited:   vs,
	})
}

// Relax appends a relax_edge event for from→to improving to newDist.
func (r *Recorder) Relax(from, to string, newDist int64, dist core.Distances) {
	r.events = append(r.events, Event{
		Kind:      KindRelaxEdge,
		From:      from,
		To:        to,
		Distance:  newDist,
		Distances: dist.Clone(),
	})
}

// Append adds already-built events, copying them.
func (r *Recorder) Append(t Trace) {
	r.events = append(r.events, t.Clone()...)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int { return len(r.events) }

// Events returns a copy of the recorded trace.
func (r *Recorder) Events() Trace { return r.events.Clone() }

// Reset drops all recorded events.
func (r *Recorder) Reset() { r.events = nil }
