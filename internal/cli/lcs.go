package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/optima/lcs"
)

func newLCSCmd() *cobra.Command {
	var showTable bool

	cmd := &cobra.Command{
		Use:   "lcs A B",
		Short: "Find a longest common subsequence of two strings",
		Example: `  optima lcs ABCBDAB BDCABA
  optima lcs signatur skigard --table`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()
			a, b := []rune(args[0]), []rune(args[1])

			prog := newProgress(logger)
			res := lcs.LCS(a, b)
			prog.done("Solved longest common subsequence")

			printKeyValue(out, "Length", strconv.Itoa(res.Length))
			printKeyValue(out, "LCS", strconv.Quote(string(res.Values)))
			if !showTable {
				return nil
			}

			// Rows follow a, columns follow b; the witness cells are highlighted.
			onPath := make(map[[2]int]bool, res.Length)
			for k := range res.Values {
				onPath[[2]int{res.IndicesA[k] + 1, res.IndicesB[k] + 1}] = true
			}
			tab := lcs.Table(a, b)
			headers := []string{"", "ε"}
			for _, r := range b {
				headers = append(headers, string(r))
			}
			rows := make([][]string, len(tab))
			for i, line := range tab {
				label := "ε"
				if i > 0 {
					label = string(a[i-1])
				}
				rows[i] = append(rows[i], label)
				for _, v := range line {
					rows[i] = append(rows[i], strconv.Itoa(v))
				}
			}
			renderTable(out, headers, rows, func(row, col int) lipgloss.Style {
				switch {
				case col == 0:
					return styleTitle
				case onPath[[2]int{row, col - 1}]:
					return styleWitness
				}

				return styleDim
			})

			return nil
		},
	}

	cmd.Flags().BoolVar(&showTable, "table", false, "print the DP table with the witness highlighted")

	return cmd
}
