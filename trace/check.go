package trace

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/pathtrace/core"
)

// Sentinel errors reported by Check.
var (
	// ErrEmptyTrace indicates a trace with no events; every run visits its start.
	ErrEmptyTrace = errors.New("trace: empty trace")

	// ErrInvariant wraps every individual invariant violation.
	ErrInvariant = errors.New("trace: invariant violated")
)

// Check verifies that t is a faithful single-run trace started at start:
//
//   - the first event visits start with distance 0;
//   - each node is visited at most once;
//   - each visit grows the visited set by exactly that node;
//   - no snapshot distance ever increases, and the node set never changes;
//   - every relaxation targets an unvisited node, leaves the last visited node,
//     strictly lowers To, and its snapshot agrees with Distance.
//
// All violations are collected into a *multierror.Error.
func Check(t Trace, start string) error {
	return check(nil, t, start)
}

// CheckAgainst runs Check and also verifies each relaxation against g:
// Distance must equal d(From) + w(From, To).
func CheckAgainst(g core.Graph, t Trace, start string) error {
	return check(g, t, start)
}

func check(g core.Graph, t Trace, start string) error {
	if len(t) == 0 {
		return ErrEmptyTrace
	}

	var result *multierror.Error
	fail := func(i int, format string, args ...interface{}) {
		result = multierror.Append(result,
			fmt.Errorf("%w: event %d: %s", ErrInvariant, i, fmt.Sprintf(format, args...)))
	}

	first := t[0]
	if first.Kind != KindVisitNode || first.Node != start {
		fail(0, "first event must visit %q, got %s %q", start, first.Kind, first.Node)
	} else if first.Distances[start] != 0 {
		fail(0, "start distance is %d, want 0", first.Distances[start])
	}

	visited := make(map[string]bool)
	var prev core.Distances
	var current string
	for i := range t {
		e := &t[i]

		if prev != nil {
			if len(e.Distances) != len(prev) {
				fail(i, "snapshot has %d nodes, previous had %d", len(e.Distances), len(prev))
			}
			for id, before := range prev {
				after, ok := e.Distances[id]
				if !ok {
					fail(i, "node %q missing from snapshot", id)
					continue
				}
				if after > before {
					fail(i, "distance of %q increased %d → %d", id, before, after)
				}
			}
		}

		switch e.Kind {
		case KindVisitNode:
			if visited[e.Node] {
				fail(i, "node %q visited twice", e.Node)
			}
			visited[e.Node] = true
			current = e.Node
			if want := sortedKeys(visited); !equalStrings(want, e.Visited) {
				fail(i, "visited set %v, want %v", e.Visited, want)
			}
			if !e.Distances.Reachable(e.Node) {
				fail(i, "visited node %q has no finite distance", e.Node)
			}

		case KindRelaxEdge:
			if e.From != current {
				fail(i, "relaxation from %q while %q is being expanded", e.From, current)
			}
			if visited[e.To] {
				fail(i, "relaxation targets visited node %q", e.To)
			}
			if prev != nil {
				if before, ok := prev[e.To]; ok && e.Distance >= before {
					fail(i, "relaxation of %q does not improve %d → %d", e.To, before, e.Distance)
				}
			}
			if got := e.Distances[e.To]; got != e.Distance {
				fail(i, "snapshot holds %d for %q, event says %d", got, e.To, e.Distance)
			}
			if g != nil {
				w, ok := g.Weight(e.From, e.To)
				if !ok {
					fail(i, "edge %s→%s not in graph", e.From, e.To)
				} else if want := core.Add(e.Distances[e.From], w); want != e.Distance {
					fail(i, "relaxation of %s→%s gives %d, want %d", e.From, e.To, e.Distance, want)
				}
			}

		default:
			fail(i, "unknown kind %q", e.Kind)
		}

		prev = e.Distances
	}

	return result.ErrorOrNil()
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
