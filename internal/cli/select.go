package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/optima/selection"
)

func newSelectCmd() *cobra.Command {
	var (
		values []int
		rank   int
		k      int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Find the i-th smallest value, or the k largest values",
		Long: `Randomized quickselect. --rank I prints the I-th smallest value (1-indexed);
--k K prints the K largest values instead. --seed fixes the pivot sequence.`,
		Example: `  optima select --values 7,14,3,19,11,2,17,8,5,13 --rank 4
  optima select --values 9,3,6,1,7,3,4,5 --k 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()
			flags := cmd.Flags()
			opts := []selection.Option{selection.WithSeed(seed)}

			switch {
			case flags.Changed("k") && flags.Changed("rank"):
				return errors.New("use either --rank or --k")
			case flags.Changed("k"):
				prog := newProgress(logger)
				top, err := selection.KLargest(slices.Clone(values), k, opts...)
				if err != nil {
					return err
				}
				prog.done(fmt.Sprintf("Selected the %d largest", k))
				printKeyValue(out, "Largest", joinInts(top))
				printKeyValue(out, "Sorted", joinInts(slices.Sorted(slices.Values(top))))
			case flags.Changed("rank"):
				prog := newProgress(logger)
				v, err := selection.SelectCopy(values, rank, opts...)
				if err != nil {
					return err
				}
				prog.done(fmt.Sprintf("Selected rank %d", rank))
				printKeyValue(out, "Rank", strconv.Itoa(rank))
				printKeyValue(out, "Value", strconv.Itoa(v))
			default:
				return errors.New("one of --rank or --k is required")
			}

			return nil
		},
	}

	cmd.Flags().IntSliceVar(&values, "values", nil, "input values (comma-separated)")
	cmd.Flags().IntVarP(&rank, "rank", "i", 0, "1-indexed rank of the value to select")
	cmd.Flags().IntVar(&k, "k", 0, "number of largest values to return")
	cmd.Flags().Int64Var(&seed, "seed", 0, "pivot seed (0 uses the package default)")

	return cmd
}
