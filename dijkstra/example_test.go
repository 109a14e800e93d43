// Package dijkstra_test provides runnable examples of the traced engine.
package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/trace"
)

// ExampleEngine_Run computes distances on a small undirected network
// (both directions listed) and prints the visit order.
func ExampleEngine_Run() {
	g := core.Graph{
		"A": {"B": 4, "C": 1},
		"B": {"A": 4, "C": 2, "D": 5},
		"C": {"A": 1, "B": 2, "D": 8},
		"D": {"B": 5, "C": 8},
	}

	dist, steps, err := dijkstra.NewEngine(g).Run("A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	parts := make([]string, 0, len(dist))
	for _, id := range g.Nodes() {
		parts = append(parts, fmt.Sprintf("%s=%d", id, dist[id]))
	}
	fmt.Println(strings.Join(parts, " "))
	fmt.Println(steps.Visits())
	// Output:
	// A=0 B=3 C=1 D=8
	// [A C B D]
}

// ExampleEngine_Run_steps prints each recorded event.
func ExampleEngine_Run_steps() {
	g := core.Graph{"A": {"B": 2}, "B": {}, "C": {}}

	_, steps, _ := dijkstra.Run(g, "A")
	for _, e := range steps {
		switch e.Kind {
		case trace.KindVisitNode:
			fmt.Printf("visit %s visited=%v\n", e.Node, e.Visited)
		case trace.KindRelaxEdge:
			fmt.Printf("relax %s->%s = %d\n", e.From, e.To, e.Distance)
		}
	}
	// Output:
	// visit A visited=[A]
	// relax A->B = 2
	// visit B visited=[A B]
}

// ExampleWithCumulativeTrace shows history accumulating across runs.
func ExampleWithCumulativeTrace() {
	g := core.Graph{"A": {"B": 1}, "B": {"A": 1}}
	e := dijkstra.NewEngine(g, dijkstra.WithCumulativeTrace())

	_, first, _ := e.Run("A")
	_, all, _ := e.Run("B")
	fmt.Println(len(first), len(all), len(trace.Split(all)))
	// Output: 3 6 2
}
