package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/optima/harness"
)

// errChecksFailed makes the process exit non-zero when a case fails.
var errChecksFailed = errors.New("some checks failed")

func newCheckCmd() *cobra.Command {
	var (
		configPath string
		fixtures   string
		large      bool
		random     int
		seed       int64
		kernels    []string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify every kernel against fixtures and brute-force oracles",
		Long: `Run the verification harness.

Without --fixtures the builtin suite is used; --large adds its bigger cases.
--random N additionally checks N generated instances per kernel against
exhaustive oracles. Flags override values read from --config.`,
		Example: `  # Builtin cases only
  optima check

  # Large cases plus 20 random instances per kernel, reproducible
  optima check --large --random 20 --seed 42

  # Only the subsequence kernels, from a TOML configuration
  optima check --config harness.toml --kernel lds,lcs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			cfg := harness.DefaultConfig()
			if configPath != "" {
				loaded, err := harness.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			flags := cmd.Flags()
			if flags.Changed("fixtures") {
				cfg.Fixtures = fixtures
			}
			if flags.Changed("large") {
				cfg.LargeTests = large
			}
			if flags.Changed("random") {
				cfg.GenerateRandom = random > 0
				cfg.RandomTests = random
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("kernel") {
				cfg.Kernels = kernels
			}

			prog := newProgress(logger)
			rep, err := harness.Run(cfg, nil, logger)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Checked %d cases", len(rep.Results)))

			renderReport(out, rep)
			if n := rep.Failed(); n > 0 {
				return fmt.Errorf("%w: %d of %d", errChecksFailed, n, len(rep.Results))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML harness configuration")
	cmd.Flags().StringVarP(&fixtures, "fixtures", "f", "", "YAML fixture suite replacing the builtin one")
	cmd.Flags().BoolVar(&large, "large", false, "include the large builtin cases")
	cmd.Flags().IntVar(&random, "random", 0, "random instances per kernel (0 disables)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for random instances (0 picks one)")
	cmd.Flags().StringSliceVarP(&kernels, "kernel", "k", nil, "kernels to check (default all)")

	return cmd
}

// renderReport prints the per-kernel table followed by every failing case.
func renderReport(w io.Writer, rep *harness.Report) {
	summary := rep.Summary()
	rows := make([][]string, len(summary))
	for i, s := range summary {
		rows[i] = []string{s.Kernel, strconv.Itoa(s.Passed), strconv.Itoa(s.Failed)}
	}
	renderTable(w, []string{"Kernel", "Passed", "Failed"}, rows, func(row, col int) lipgloss.Style {
		switch {
		case col == 1:
			return stylePassed
		case col == 2 && summary[row].Failed > 0:
			return styleFailed
		case col == 2:
			return styleDim
		}

		return styleValue
	})

	for _, c := range rep.Results {
		if c.OK {
			continue
		}
		kind := "fixture"
		if c.Random {
			kind = "random"
		}
		printError(w, "%s %s (%s)", c.Kernel, c.Name, kind)
		printDetail(w, "%s", c.Detail)
	}

	printKeyValue(w, "Run", rep.RunID.String())
	printKeyValue(w, "Seed", strconv.FormatInt(rep.Seed, 10))
	if n := rep.Failed(); n > 0 {
		printError(w, "%d of %d cases failed", n, len(rep.Results))
		return
	}
	printSuccess(w, "%d cases passed", len(rep.Results))
}
