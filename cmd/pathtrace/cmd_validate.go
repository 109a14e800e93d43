package main

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/core"
)

func newValidateCmd() *cobra.Command {
	var graphPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Report every negative weight and dangling edge in a graph file",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := core.Load(graphPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			verr := g.Validate()
			if verr == nil {
				fmt.Fprintf(out, "ok: %d nodes, %d edges\n", len(g), g.EdgeCount())
				return nil
			}
			var merr *multierror.Error
			if errors.As(verr, &merr) {
				for _, e := range merr.Errors {
					fmt.Fprintln(out, e)
				}
				return fmt.Errorf("%d problem(s) found", len(merr.Errors))
			}
			return verr
		},
	}
	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "Graph file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}
