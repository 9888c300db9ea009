package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/optima/rodcut"
)

func newRodCutCmd() *cobra.Command {
	var (
		length    int
		prices    []int
		showTable bool
	)

	cmd := &cobra.Command{
		Use:   "rodcut",
		Short: "Cut a rod into pieces of maximum total price",
		Example: `  optima rodcut --length 4 --prices 1,5,8,9
  optima rodcut --length 8 --prices 1,5,8,9,10,17,17,20 --table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			prog := newProgress(logger)
			res, err := rodcut.Cut(length, prices)
			if err != nil {
				return err
			}
			prog.done("Solved rod cutting")
			logger.Debug("rodcut", "length", length, "prices", len(prices), "revenue", res.Revenue)

			printKeyValue(out, "Revenue", strconv.Itoa(res.Revenue))
			printKeyValue(out, "Pieces", joinInts(res.Pieces))
			if !showTable {
				return nil
			}

			rows := make([][]string, len(res.Best))
			for n, best := range res.Best {
				price := "-"
				if n >= 1 && n <= len(prices) {
					price = strconv.Itoa(prices[n-1])
				}
				rows[n] = []string{strconv.Itoa(n), price, strconv.Itoa(best)}
			}
			renderTable(out, []string{"Length", "Price", "Best"}, rows, func(row, col int) lipgloss.Style {
				if row == length {
					return styleWitness
				}
				if col == 2 {
					return styleNumber
				}

				return styleValue
			})

			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", 0, "rod length")
	cmd.Flags().IntSliceVarP(&prices, "prices", "p", nil, "price of a piece of length 1, 2, ... (comma-separated)")
	cmd.Flags().BoolVar(&showTable, "table", false, "print the optimal revenue for every length")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}
