// File: methods_vertices.go
// Role: vertex lifecycle (add, existence, removal with adjacency scrub).

package core

import "sort"

// AddVertex registers id as a vertex and raises the high-water mark.
// It returns false when id < 1 or id exceeds the configured ceiling.
// Adding an existing vertex is a successful no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id int) bool {
	if !g.admissible(id) {
		return false
	}
	if id > g.highWater {
		g.highWater = id
	}
	g.live[id] = struct{}{}

	return true
}

// admissible reports whether id is inside [1, maxVertices] (or ≥ 1 when unbounded).
func (g *Graph) admissible(id int) bool {
	if id < 1 {
		return false
	}

	return g.maxVertices == 0 || id <= g.maxVertices
}

// HasVertex reports whether id is a vertex.
// In implicit mode any admissible id up to HighWater() counts, unless it was removed.
func (g *Graph) HasVertex(id int) bool {
	if _, ok := g.live[id]; ok {
		return true
	}
	if !g.implicit || !g.admissible(id) || id > g.highWater {
		return false
	}
	_, removed := g.removed(id)

	return !removed
}

// removed reports ids that were explicitly removed in implicit mode.
// A removed id is kept in adj with a nil list as a tombstone.
func (g *Graph) removed(id int) (*adjacency, bool) {
	l, ok := g.adj[id]

	return l, ok && l == nil
}

// RemoveVertex deletes id, its own adjacency list and every mirrored entry
// pointing at it. It returns false when id is not a vertex.
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(id int) bool {
	if !g.HasVertex(id) {
		return false
	}
	if own := g.adj[id]; own != nil {
		g.edges -= own.Len()
		own.Clear()
	}
	for other, l := range g.adj {
		if other == id || l == nil {
			continue
		}
		// at most one entry per neighbour, RemoveKey stops at the first match
		l.RemoveKey(id)
	}
	delete(g.live, id)
	if g.implicit {
		g.adj[id] = nil
	} else {
		delete(g.adj, id)
	}

	return true
}

// Vertices returns every vertex id in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	ids := make([]int, 0, len(g.live))
	for id := range g.live {
		ids = append(ids, id)
	}
	if g.implicit {
		for id := 1; id <= g.highWater; id++ {
			if _, ok := g.live[id]; !ok && g.HasVertex(id) {
				ids = append(ids, id)
			}
		}
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	if !g.implicit {
		return len(g.live)
	}

	return len(g.Vertices())
}

// HighWater returns the largest vertex id ever registered.
func (g *Graph) HighWater() int { return g.highWater }

// MaxVertices returns the vertex id ceiling; 0 means unbounded.
func (g *Graph) MaxVertices() int { return g.maxVertices }
