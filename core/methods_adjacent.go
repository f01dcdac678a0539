// File: methods_adjacent.go
// Role: read-only neighbourhood access used by the search packages.

package core

// Neighbors returns a copy of id's adjacency in insertion order.
// An unknown id yields nil.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) []Neighbor {
	l := g.adj[id]
	if l == nil {
		return nil
	}

	return l.Slice()
}

// ForEachNeighbor calls fn for every neighbour of id in insertion order and
// stops early when fn returns false. It does not allocate.
func (g *Graph) ForEachNeighbor(id int, fn func(n Neighbor) bool) {
	l := g.adj[id]
	if l == nil {
		return
	}
	for _, n := range l.All() {
		if !fn(n) {
			return
		}
	}
}

// Degree returns the number of neighbours of id.
func (g *Graph) Degree(id int) int {
	l := g.adj[id]
	if l == nil {
		return 0
	}

	return l.Len()
}
