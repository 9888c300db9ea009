package cli

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/optima/bfs"
	"github.com/katalvlaran/optima/dfs"
	"github.com/katalvlaran/optima/dijkstra"
	"github.com/katalvlaran/optima/harness"
)

func newShortestCmd() *cobra.Command {
	var (
		graphPath   string
		source      int
		useBFS      bool
		useDFS      bool
		maxDistance float64
	)

	cmd := &cobra.Command{
		Use:   "shortest",
		Short: "Compute distances and shortest paths from a source vertex",
		Long: `Read a graph from a YAML file and print the distance and one shortest path
to every reachable vertex. Dijkstra is used by default; --bfs counts hops
instead of summing weights and --dfs lists the vertices reachable from the
source in depth-first order. Unreachable vertices are omitted.`,
		Example: `  # graph.yaml:
  #   vertices: 5
  #   directed: false
  #   edges: [[0, 1, 1], [1, 2, 1], [2, 3], [3, 4], [4, 0]]
  optima shortest --graph graph.yaml --source 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()
			if useBFS && useDFS {
				return errors.New("use either --bfs or --dfs")
			}

			var spec harness.GraphSpec
			if err := readYAML(graphPath, &spec); err != nil {
				return err
			}
			g, err := spec.Build()
			if err != nil {
				return err
			}
			logger.Debug("graph loaded", "vertices", g.Order(), "edges", len(spec.Edges), "directed", spec.Directed)

			prog := newProgress(logger)
			var rows [][]string
			switch {
			case useDFS:
				res, err := dfs.DFS(g, source)
				if err != nil {
					return err
				}
				prog.done("Explored depth-first")
				for _, v := range res.Order {
					rows = append(rows, []string{strconv.Itoa(v), strconv.Itoa(res.Depth[v]), "-"})
				}
			case useBFS:
				res, err := bfs.BFS(g, source)
				if err != nil {
					return err
				}
				prog.done("Explored breadth-first")
				for _, v := range res.Order {
					path, _ := res.PathTo(v)
					rows = append(rows, []string{strconv.Itoa(v), strconv.Itoa(res.Depth[v]), joinInts(path)})
				}
			default:
				opts := []dijkstra.Option{dijkstra.WithReturnPath()}
				if cmd.Flags().Changed("max-distance") {
					opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
				}
				res, err := dijkstra.Dijkstra(g, source, opts...)
				if err != nil {
					return err
				}
				prog.done("Solved shortest paths")
				for v := 0; v < g.Order(); v++ {
					d, ok := res.Dist[v]
					if !ok {
						continue
					}
					path, _ := res.PathTo(v)
					rows = append(rows, []string{strconv.Itoa(v), formatFloat(d), joinInts(path)})
				}
			}

			if len(rows) == 0 {
				printDetail(out, "source %d is not a vertex of the graph", source)
				return nil
			}
			printTitle(out, "From vertex "+strconv.Itoa(source))
			header := "Distance"
			if useBFS || useDFS {
				header = "Depth"
			}
			renderTable(out, []string{"Vertex", header, "Path"}, rows, func(row, col int) lipgloss.Style {
				if col == 1 {
					return styleNumber
				}

				return styleValue
			})

			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "YAML graph file {vertices, directed, edges}")
	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex")
	cmd.Flags().BoolVar(&useBFS, "bfs", false, "count hops with breadth-first search")
	cmd.Flags().BoolVar(&useDFS, "dfs", false, "list reachable vertices in depth-first order")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "ignore vertices farther than this")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
