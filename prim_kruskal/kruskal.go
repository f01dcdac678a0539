package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/transitnet/core"
)

// Kruskal returns a minimum spanning tree of g with its total weight.
// A single vertex yields an empty tree; an empty or disconnected graph yields ErrDisconnected.
func Kruskal(g *core.Graph) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}

	tree, total := kruskal(g)
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// SpanningForest returns a minimum spanning tree of every connected
// component of g: V - C edges for C components. It never fails on a non-nil graph.
func SpanningForest(g *core.Graph) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	tree, total := kruskal(g)

	return tree, total, nil
}

// kruskal merges components along edges in ascending order until no edge joins two components.
func kruskal(g *core.Graph) ([]core.Edge, int64) {
	vertices := g.Vertices()
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool { return lessEdge(edges[i], edges[j]) })

	parent := make(map[int]int, len(vertices))
	rank := make(map[int]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union reports whether u and v were in different sets.
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}

		return true
	}

	tree := make([]core.Edge, 0, max(len(vertices)-1, 0))
	var total int64
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		tree = append(tree, e)
		total = core.AddWeights(total, e.Weight)
		if len(tree) == len(vertices)-1 {
			break
		}
	}

	return tree, total
}
