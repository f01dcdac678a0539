package dfs_test

import (
	"testing"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/dfs"
)

// BenchmarkLongestPath_Complete9 exhausts every simple path of K9.
func BenchmarkLongestPath_Complete9(b *testing.B) {
	g := core.NewGraph()
	for id := 1; id <= 9; id++ {
		g.AddVertex(id)
	}
	for u := 1; u <= 9; u++ {
		for v := u + 1; v <= 9; v++ {
			g.AddEdge(u, v, int64(u*v%7))
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.LongestPath(g, 1, 9)
	}
}

// BenchmarkDFS_BinaryTree measures traversal of a 1023-vertex tree.
func BenchmarkDFS_BinaryTree(b *testing.B) {
	g := buildBinaryTree(10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 1)
	}
}
