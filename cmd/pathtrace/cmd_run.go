package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
)

// demoGraph is the four-intersection network used by `pathtrace demo`.
func demoGraph() core.Graph {
	return core.Graph{
		"A": {"B": 4, "C": 1},
		"B": {"A": 4, "C": 2, "D": 5},
		"C": {"A": 1, "B": 2, "D": 8},
		"D": {"B": 5, "C": 8},
	}
}

func newRunCmd() *cobra.Command {
	var (
		graphPath  string
		start      string
		strict     bool
		cumulative bool
		repeat     int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run Dijkstra from a start node and print distances and steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			if repeat < 1 {
				return fmt.Errorf("--repeat must be at least 1, got %d", repeat)
			}
			g, err := core.Load(graphPath)
			if err != nil {
				return err
			}
			opts := []dijkstra.Option{dijkstra.WithLogger(newLogger(cmd))}
			if strict {
				opts = append(opts, dijkstra.WithStrictValidation())
			}
			if cumulative {
				opts = append(opts, dijkstra.WithCumulativeTrace())
			}
			return runEngine(cmd, dijkstra.NewEngine(g, opts...), start, repeat)
		},
	}
	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "Graph file (YAML or JSON)")
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start node")
	cmd.Flags().BoolVar(&strict, "strict", false, "Validate every edge before running")
	cmd.Flags().BoolVar(&cumulative, "cumulative", false, "Keep the trace across repeated runs")
	cmd.Flags().IntVar(&repeat, "repeat", 1, "Run the engine this many times on the same instance")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in four-node example from A",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := dijkstra.NewEngine(demoGraph(), dijkstra.WithLogger(newLogger(cmd)))
			return runEngine(cmd, engine, "A", 1)
		},
	}
}

func runEngine(cmd *cobra.Command, engine *dijkstra.Engine, start string, repeat int) error {
	for i := 1; i < repeat; i++ {
		if _, _, err := engine.Run(start); err != nil {
			return err
		}
	}
	dist, steps, err := engine.Run(start)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), flagFmt, dist, steps)
}
