package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/optima/subseq"
)

func newLDSCmd() *cobra.Command {
	var (
		seq        []int
		increasing bool
		showTable  bool
	)

	cmd := &cobra.Command{
		Use:   "lds",
		Short: "Find a longest strictly decreasing subsequence",
		Example: `  optima lds --seq 8,7,3,6,2,6
  optima lds --seq 10,9,2,5,3,7,101,18 --increasing --table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			prog := newProgress(logger)
			var res subseq.Result[int]
			if increasing {
				res = subseq.LongestIncreasing(seq)
			} else {
				res = subseq.LongestDecreasing(seq)
			}
			prog.done("Solved longest subsequence")

			printKeyValue(out, "Length", strconv.Itoa(res.Length))
			printKeyValue(out, "Values", joinInts(res.Values))
			printKeyValue(out, "Indices", joinInts(res.Indices))
			if !showTable || len(seq) == 0 {
				return nil
			}

			inWitness := make(map[int]bool, len(res.Indices))
			for _, i := range res.Indices {
				inWitness[i] = true
			}
			rows := make([][]string, len(seq))
			for i, x := range seq {
				rows[i] = []string{strconv.Itoa(i), strconv.Itoa(x), strconv.Itoa(res.Ending[i])}
			}
			renderTable(out, []string{"Index", "Value", "Ending"}, rows, func(row, col int) lipgloss.Style {
				if inWitness[row] {
					return styleWitness
				}

				return styleValue
			})

			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&seq, "seq", "s", nil, "input sequence (comma-separated)")
	cmd.Flags().BoolVar(&increasing, "increasing", false, "find a longest strictly increasing subsequence instead")
	cmd.Flags().BoolVar(&showTable, "table", false, "print the length of the best subsequence ending at each index")

	return cmd
}
