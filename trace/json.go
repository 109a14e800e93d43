package trace

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

// ErrUnknownKind indicates an event whose kind is neither visit_node nor relax_edge.
var ErrUnknownKind = errors.New("trace: unknown event kind")

// Wire shapes fix field order per kind. Infinity travels as null.
type visitWire struct {
	Action       Kind              `json:"action"`
	CurrentNode  string            `json:"current_node"`
	Distances    map[string]*int64 `json:"distances"`
	VisitedNodes []string          `json:"visited_nodes"`
}

type relaxWire struct {
	Action          Kind              `json:"action"`
	From            string            `json:"from"`
	To              string            `json:"to"`
	UpdatedDistance int64             `json:"updated_distance"`
	Distances       map[string]*int64 `json:"distances"`
}

type anyWire struct {
	Action          Kind              `json:"action"`
	CurrentNode     string            `json:"current_node"`
	From            string            `json:"from"`
	To              string            `json:"to"`
	UpdatedDistance int64             `json:"updated_distance"`
	Distances       map[string]*int64 `json:"distances"`
	VisitedNodes    []string          `json:"visited_nodes"`
}

// EncodeDistances converts d into its JSON-friendly form (Infinity → nil).
func EncodeDistances(d core.Distances) map[string]*int64 {
	out := make(map[string]*int64, len(d))
	for id, dist := range d {
		if dist == core.Infinity {
			out[id] = nil
			continue
		}
		v := dist
		out[id] = &v
	}

	return out
}

// DecodeDistances reverses EncodeDistances.
func DecodeDistances(m map[string]*int64) core.Distances {
	out := make(core.Distances, len(m))
	for id, p := range m {
		if p == nil {
			out[id] = core.Infinity
			continue
		}
		out[id] = *p
	}

	return out
}

// MarshalJSON encodes e in its kind-specific shape.
func (e Event) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case KindVisitNode:
		vs := e.Visited
		if vs == nil {
			vs = []string{}
		}
		return json.Marshal(visitWire{
			Action:       e.Kind,
			CurrentNode:  e.Node,
			Distances:    EncodeDistances(e.Distances),
			VisitedNodes: vs,
		})
	case KindRelaxEdge:
		return json.Marshal(relaxWire{
			Action:          e.Kind,
			From:            e.From,
			To:              e.To,
			UpdatedDistance: e.Distance,
			Distances:       EncodeDistances(e.Distances),
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}
}

// UnmarshalJSON decodes either event shape.
func (e *Event) UnmarshalJSON(b []byte) error {
	var w anyWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	switch w.Action {
	case KindVisitNode:
		*e = Event{
			Kind:      w.Action,
			Node:      w.CurrentNode,
			Distances: DecodeDistances(w.Distances),
			Visited:   w.VisitedNodes,
		}
	case KindRelaxEdge:
		*e = Event{
			Kind:      w.Action,
			From:      w.From,
			To:        w.To,
			Distance:  w.UpdatedDistance,
			Distances: DecodeDistances(w.Distances),
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, w.Action)
	}

	return nil
}

// Hash returns the sha256 hex digest of t's JSON encoding. encoding/json sorts
// map keys, so equal traces always hash equally.
func Hash(t Trace) (string, error) {
	if t == nil {
		t = Trace{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)

	return hex.EncodeToString(sum[:]), nil
}
