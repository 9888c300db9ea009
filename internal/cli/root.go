package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called by main with values injected at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCmd builds the optima command tree.
//
// The --verbose (-v) flag switches the logger attached to the command
// context from info to debug level. Logs go to the command's stderr and
// results to its stdout.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "optima",
		Short:        "optima solves classic optimization problems and shows the witness",
		Long:         `optima runs dynamic-programming, selection and shortest-path kernels on small inputs and prints both the optimal value and an answer that achieves it. The check command verifies every kernel against brute-force oracles.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("optima %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newRodCutCmd())
	root.AddCommand(newKnapsackCmd())
	root.AddCommand(newLDSCmd())
	root.AddCommand(newLCSCmd())
	root.AddCommand(newSelectCmd())
	root.AddCommand(newSeamCmd())
	root.AddCommand(newShortestCmd())

	return root
}

// Execute runs the optima CLI with ctx, typically cancelled on SIGINT.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
