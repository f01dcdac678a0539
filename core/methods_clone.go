// File: methods_clone.go
// Role: deep copy and reset.

package core

// Clone returns a deep copy: configuration, live set, high-water mark and
// every adjacency list in the same insertion order.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		maxVertices: g.maxVertices,
		implicit:    g.implicit,
		highWater:   g.highWater,
		live:        make(map[int]struct{}, len(g.live)),
		adj:         make(map[int]*adjacency, len(g.adj)),
		edges:       g.edges,
	}
	for id := range g.live {
		c.live[id] = struct{}{}
	}
	for id, l := range g.adj {
		if l == nil {
			c.adj[id] = nil
			continue
		}
		nl := newAdjacency()
		nl.Reset(l.Slice())
		c.adj[id] = nl
	}

	return c
}

// Clear removes every vertex and edge and resets the high-water mark.
// Options given to NewGraph are kept.
func (g *Graph) Clear() {
	g.live = make(map[int]struct{})
	g.adj = make(map[int]*adjacency)
	g.highWater = 0
	g.edges = 0
}
