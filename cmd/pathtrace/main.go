// Command pathtrace runs the traced shortest-path engine over a graph file
// and prints the final distances together with every recorded step.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

var (
	flagFmt      string
	flagLogLevel string
	logLevel     hclog.Level
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("pathtrace version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("pathtrace version %s-dev", version)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pathtrace",
		Short:         "Step-by-step Dijkstra shortest paths",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return checkGlobalFlags()
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "text", "Output format: text|json")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: trace|debug|info|warn|error|off")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newValidateCmd())

	return rootCmd
}

// checkGlobalFlags rejects bad --format and --log-level values before any
// subcommand loads a graph or runs the engine.
func checkGlobalFlags() error {
	if err := checkFormat(flagFmt); err != nil {
		return err
	}
	// LevelFromString maps unknown names to NoLevel, which hclog treats as Info.
	lvl := hclog.LevelFromString(flagLogLevel)
	if lvl == hclog.NoLevel {
		return fmt.Errorf("invalid --log-level %q (want trace|debug|info|warn|error|off)", flagLogLevel)
	}
	logLevel = lvl
	return nil
}

// newLogger builds the stderr logger used by every subcommand.
func newLogger(cmd *cobra.Command) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "pathtrace",
		Level:  logLevel,
		Output: cmd.ErrOrStderr(),
	})
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
