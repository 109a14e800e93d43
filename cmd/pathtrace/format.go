package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/trace"
)

type jsonResult struct {
	Distances map[string]*int64 `json:"distances"`
	Steps     trace.Trace       `json:"steps"`
}

func checkFormat(format string) error {
	switch format {
	case "text", "json", "":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text|json)", format)
	}
}

func writeResult(w io.Writer, format string, dist core.Distances, steps trace.Trace) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if steps == nil {
			steps = trace.Trace{}
		}
		return enc.Encode(jsonResult{Distances: trace.EncodeDistances(dist), Steps: steps})
	case "text", "":
		writeText(w, dist, steps)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text|json)", format)
	}
}

func writeText(w io.Writer, dist core.Distances, steps trace.Trace) {
	fmt.Fprintln(w, "Final Shortest Distances:")
	for _, id := range sortedIDs(dist) {
		fmt.Fprintf(w, "%s: %s\n", id, formatDist(dist[id]))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Execution Steps:")
	for i, e := range steps {
		fmt.Fprintf(w, "%3d  %s\n", i+1, formatEvent(e))
	}
}

func formatEvent(e trace.Event) string {
	switch e.Kind {
	case trace.KindVisitNode:
		return fmt.Sprintf("visit_node %s  visited=[%s]  %s",
			e.Node, strings.Join(e.Visited, " "), formatTable(e.Distances))
	case trace.KindRelaxEdge:
		return fmt.Sprintf("relax_edge %s→%s = %d  %s",
			e.From, e.To, e.Distance, formatTable(e.Distances))
	default:
		return string(e.Kind)
	}
}

func formatTable(d core.Distances) string {
	parts := make([]string, 0, len(d))
	for _, id := range sortedIDs(d) {
		parts = append(parts, id+":"+formatDist(d[id]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func formatDist(d int64) string {
	if d == core.Infinity {
		return "inf"
	}
	return strconv.FormatInt(d, 10)
}

func sortedIDs(d core.Distances) []string {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
