package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrBadWeight indicates a decoded edge weight that is not an integer scalar.
var ErrBadWeight = errors.New("core: edge weight must be an integer")

// Decode reads a YAML or JSON mapping of node → {neighbor: weight} from r.
//
// A node declared with no value (`D:` in YAML, `"D": null` in JSON) is kept as
// a node without outgoing edges. Weights must be plain integers: floats,
// strings and other scalars are rejected with ErrBadWeight rather than
// truncated. The decoded graph is not validated; call Validate when the
// source is untrusted.
func Decode(r io.Reader) (Graph, error) {
	var raw map[string]map[string]yaml.Node
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyGraph
		}
		return nil, fmt.Errorf("core: decode graph: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyGraph
	}

	// Walk in sorted order so the first reported bad edge is stable.
	froms := make([]string, 0, len(raw))
	for from := range raw {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	g := make(Graph, len(raw))
	for _, from := range froms {
		adj := raw[from]
		tos := make([]string, 0, len(adj))
		for to := range adj {
			tos = append(tos, to)
		}
		sort.Strings(tos)

		edges := make(map[string]int64, len(adj))
		for _, to := range tos {
			w, err := decodeWeight(adj[to])
			if err != nil {
				return nil, fmt.Errorf("core: decode graph: edge %s→%s: %w", from, to, err)
			}
			edges[to] = w
		}
		g[from] = edges
	}

	return g, nil
}

// decodeWeight accepts only !!int scalars; yaml.v3 would otherwise truncate
// floats such as 2.5 or -0.5 when decoding straight into int64.
func decodeWeight(n yaml.Node) (int64, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!int" {
		return 0, fmt.Errorf("%w: got %q at line %d", ErrBadWeight, n.Value, n.Line)
	}
	var w int64
	if err := n.Decode(&w); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadWeight, err)
	}

	return w, nil
}

// Load opens path and decodes it with Decode.
func Load(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("core: open graph: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
