package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/optima/dfs"
	"github.com/katalvlaran/optima/graph"
)

// BenchmarkDFS_Chain10000 measures DFS on a directed chain of 10,000 vertices.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g, err := graph.Path(10000, 1, graph.WithDirected())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = dfs.DFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReachable_RandomSparse(b *testing.B) {
	g, err := graph.Random(2000, 0.005, 1, rand.New(rand.NewSource(3)))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.Reachable(g, 0)
	}
}
