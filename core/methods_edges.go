// File: methods_edges.go
// Role: undirected edge insertion with min-weight reconciliation and edge queries.

package core

import "sort"

// AddEdge connects from and to with weight w in both directions.
//
// It is a no-op returning false when either endpoint is not a vertex, when
// from == to, or when w < 0. If the pair is already connected both entries
// are lowered to min(old, w); the weight is never raised and no duplicate is
// created. The return value reports whether the graph holds the edge after the call.
//
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) AddEdge(from, to int, w int64) bool {
	if from == to || w < 0 || !g.HasVertex(from) || !g.HasVertex(to) {
		return false
	}
	src, dst := g.list(from), g.list(to)
	if cur, ok := src.Find(to); ok {
		if w < cur.Weight {
			src.Update(to, func(n Neighbor) Neighbor { n.Weight = w; return n })
			dst.Update(from, func(n Neighbor) Neighbor { n.Weight = w; return n })
		}

		return true
	}
	src.Append(Neighbor{ID: to, Weight: w})
	dst.Append(Neighbor{ID: from, Weight: w})
	g.edges++

	return true
}

// list returns the adjacency list of id, allocating it on first use.
func (g *Graph) list(id int) *adjacency {
	l := g.adj[id]
	if l == nil {
		l = newAdjacency()
		g.adj[id] = l
	}

	return l
}

// HasEdge reports whether from and to are adjacent.
func (g *Graph) HasEdge(from, to int) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of the edge between from and to.
// Complexity: O(deg(from)).
func (g *Graph) Weight(from, to int) (int64, bool) {
	l := g.adj[from]
	if l == nil {
		return 0, false
	}
	n, ok := l.Find(to)

	return n.Weight, ok
}

// Edges returns each undirected edge once with From < To, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for from, l := range g.adj {
		if l == nil {
			continue
		}
		for _, n := range l.All() {
			if from < n.ID {
				out = append(out, Edge{From: from, To: n.ID, Weight: n.Weight})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }
