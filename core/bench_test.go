// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/transitnet/core"
)

// BenchmarkAddEdge_Star measures edge insertion onto one hub vertex,
// the worst case for the linear neighbour lookup.
func BenchmarkAddEdge_Star(b *testing.B) {
	const n = 1000
	g := core.NewGraph(core.WithMaxVertices(0))
	for id := 1; id <= n; id++ {
		g.AddVertex(id)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge(1, 2+i%(n-1), int64(i%7))
	}
}

// BenchmarkRemoveVertex measures the adjacency scrub on a dense graph.
func BenchmarkRemoveVertex(b *testing.B) {
	const n = 60
	base := core.NewGraph()
	for u := 1; u <= n; u++ {
		base.AddVertex(u)
	}
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			base.AddEdge(u, v, 1)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		g.RemoveVertex(1 + i%n)
	}
}
