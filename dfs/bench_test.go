package dfs_test

import (
	"testing"

	"github.com/katalvlaran/digraph/builder"
	"github.com/katalvlaran/digraph/dfs"
)

// BenchmarkDFS_Chain measures DFS on a linear chain of 10,001 vertices.
// Each traversal is O(V + A).
func BenchmarkDFS_Chain(b *testing.B) {
	g, err := builder.Path[int](10001)
	if err != nil {
		b.Fatalf("build chain: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.ArcCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkDFS_RandomSparse measures DFS on a seeded sparse random graph.
func BenchmarkDFS_RandomSparse(b *testing.B) {
	const (
		V = 5000
		A = 10000
	)
	g, err := builder.RandomSparse[int](V, A, builder.WithSeed[int](42))
	if err != nil {
		b.Fatalf("build random graph: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + A))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0, dfs.WithFullTraversal())
	}
}

// BenchmarkDetectCycles measures cycle extraction on a dense graph where
// every vertex pair forms a 2-cycle.
func BenchmarkDetectCycles(b *testing.B) {
	g, err := builder.Complete[int](50)
	if err != nil {
		b.Fatalf("build complete graph: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DetectCycles(g)
	}
}
