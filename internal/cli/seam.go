package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/optima/seam"
)

func newSeamCmd() *cobra.Command {
	var (
		gridPath  string
		showTable bool
	)

	cmd := &cobra.Command{
		Use:   "seam",
		Short: "Find a minimum-cost top-to-bottom path through a weight grid",
		Long: `Read a rectangular grid of non-negative weights from a YAML file (a list of
rows) and print the cheapest path that moves down one row at a time and at
most one column sideways.`,
		Example: `  # grid.yaml:
  #   - [3, 1, 4]
  #   - [1, 5, 9]
  #   - [2, 6, 5]
  optima seam --grid grid.yaml --table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			var grid [][]float64
			if err := readYAML(gridPath, &grid); err != nil {
				return err
			}
			logger.Debug("grid loaded", "rows", len(grid), "path", gridPath)

			prog := newProgress(logger)
			path, cost, err := seam.MinPath(grid)
			if err != nil {
				return err
			}
			prog.done("Solved minimum seam")

			cols := make([]int, len(path))
			for i, p := range path {
				cols[i] = p.Col
			}
			printKeyValue(out, "Cost", formatFloat(cost))
			printKeyValue(out, "Columns", joinInts(cols))
			if !showTable {
				return nil
			}

			headers := make([]string, len(grid[0]))
			for c := range headers {
				headers[c] = fmt.Sprintf("c%d", c)
			}
			rows := make([][]string, len(grid))
			for r, line := range grid {
				rows[r] = make([]string, len(line))
				for c, v := range line {
					rows[r][c] = formatFloat(v)
				}
			}
			renderTable(out, headers, rows, func(row, col int) lipgloss.Style {
				if path[row].Col == col {
					return styleWitness
				}

				return styleDim
			})

			return nil
		},
	}

	cmd.Flags().StringVarP(&gridPath, "grid", "g", "", "YAML file holding the grid rows")
	cmd.Flags().BoolVar(&showTable, "table", false, "print the grid with the path highlighted")
	_ = cmd.MarkFlagRequired("grid")

	return cmd
}
