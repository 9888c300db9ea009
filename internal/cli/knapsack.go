package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/optima/knapsack"
)

func newKnapsackCmd() *cobra.Command {
	var (
		weights   []int
		values    []int
		capacity  int
		unbounded bool
		rolling   bool
	)

	cmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Pick items of maximum total value within a weight capacity",
		Long: `Solve the 0/1 knapsack, or with --unbounded the variant where every item
may be taken any number of times. --rolling keeps a single DP row and
reports the optimal value only.`,
		Example: `  optima knapsack --weights 2,3,4,5 --values 3,4,5,6 --capacity 5
  optima knapsack --weights 1,3,4,5 --values 10,40,50,70 --capacity 8 --unbounded`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			solve, variant := knapsack.ZeroOne, "0/1"
			if unbounded {
				solve, variant = knapsack.Unbounded, "unbounded"
			}
			var opts []knapsack.Option
			if rolling {
				opts = append(opts, knapsack.WithMemoryMode(knapsack.RollingRow), knapsack.WithoutItems())
			}

			prog := newProgress(logger)
			res, err := solve(weights, values, capacity, opts...)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Solved %s knapsack", variant))

			printKeyValue(out, "Value", strconv.Itoa(res.Value))
			if rolling {
				return nil
			}
			printKeyValue(out, "Weight", fmt.Sprintf("%d / %d", res.Weight, capacity))

			var rows [][]string
			for i, n := range res.Counts {
				if n == 0 {
					continue
				}
				rows = append(rows, []string{
					strconv.Itoa(i), strconv.Itoa(weights[i]), strconv.Itoa(values[i]), strconv.Itoa(n),
				})
			}
			if len(rows) == 0 {
				printDetail(out, "no item fits")
				return nil
			}
			renderTable(out, []string{"Item", "Weight", "Value", "Count"}, rows, func(row, col int) lipgloss.Style {
				if col == 3 {
					return styleNumber
				}

				return styleValue
			})

			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&weights, "weights", "w", nil, "item weights (comma-separated)")
	cmd.Flags().IntSliceVarP(&values, "values", "V", nil, "item values (comma-separated)")
	cmd.Flags().IntVarP(&capacity, "capacity", "C", 0, "weight capacity")
	cmd.Flags().BoolVarP(&unbounded, "unbounded", "u", false, "allow unlimited copies of every item")
	cmd.Flags().BoolVar(&rolling, "rolling", false, "use O(capacity) memory and skip the item list")
	_ = cmd.MarkFlagRequired("capacity")

	return cmd
}
