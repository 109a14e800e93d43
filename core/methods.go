package core

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// HasNode reports whether id is a key of g.
func (g Graph) HasNode(id string) bool {
	_, ok := g[id]

	return ok
}

// Nodes returns all node IDs sorted lexicographically.
// Complexity: O(V log V).
func (g Graph) Nodes() []string {
	ids := make([]string, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the targets of id's outgoing edges sorted lexicographically.
// A missing id yields nil.
func (g Graph) Neighbors(id string) []string {
	adj := g[id]
	if len(adj) == 0 {
		return nil
	}
	ids := make([]string, 0, len(adj))
	for to := range adj {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids
}

// Weight returns the weight of from→to and whether that edge exists.
func (g Graph) Weight(from, to string) (int64, bool) {
	w, ok := g[from][to]

	return w, ok
}

// EdgeCount returns the number of directed edges in g.
func (g Graph) EdgeCount() int {
	n := 0
	for _, adj := range g {
		n += len(adj)
	}

	return n
}

// Clone returns a deep copy of g. Nil adjacency maps are preserved as empty maps.
func (g Graph) Clone() Graph {
	if g == nil {
		return nil
	}
	out := make(Graph, len(g))
	for from, adj := range g {
		cp := make(map[string]int64, len(adj))
		for to, w := range adj {
			cp[to] = w
		}
		out[from] = cp
	}

	return out
}

// CheckEdge validates a single edge against the graph contract.
// It returns an error wrapping ErrNegativeWeight or ErrDanglingEdge, or nil.
func (g Graph) CheckEdge(from, to string, w int64) error {
	if w < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, from, to, w)
	}
	if !g.HasNode(to) {
		return fmt.Errorf("%w: edge %s→%s", ErrDanglingEdge, from, to)
	}

	return nil
}

// Validate scans every edge and reports all contract violations at once.
// The returned error is a *multierror.Error; errors.Is matches each sentinel
// it contains. Order is deterministic: by source, then by target.
// Complexity: O(V log V + E log E).
func (g Graph) Validate() error {
	var result *multierror.Error
	for _, from := range g.Nodes() {
		for _, to := range g.Neighbors(from) {
			if err := g.CheckEdge(from, to, g[from][to]); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}

	return result.ErrorOrNil()
}
