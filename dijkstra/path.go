package dijkstra

import (
	"slices"

	"github.com/katalvlaran/transitnet/core"
)

// ShortestPath returns the minimum-weight path from start to end inclusive.
//
// The result is empty when g is nil, either endpoint is not a vertex, end is
// unreachable, or the predecessor walk from end does not terminate at start.
// start == end yields the one-element path [start].
func ShortestPath(g *core.Graph, start, end int) core.Path {
	if g == nil || !g.HasVertex(start) || !g.HasVertex(end) {
		return core.Path{}
	}
	if start == end {
		return core.Path{start}
	}

	dist, prev, err := Dijkstra(g, Source(start), WithTarget(end), WithReturnPath())
	if err != nil || dist[end] == Unreachable {
		return core.Path{}
	}

	return walk(prev, start, end, g.VertexCount())
}

// walk follows prev back from end. More than limit steps means the chain
// is broken, so the walk gives up instead of looping.
func walk(prev map[int]int, start, end, limit int) core.Path {
	path := core.Path{end}
	for cur := end; cur != start; {
		p, ok := prev[cur]
		if !ok || len(path) > limit {
			return core.Path{}
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path
}
