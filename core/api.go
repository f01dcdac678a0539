// File: api.go
// Role: aggregate queries over a Graph: stats, path weights, invariant checks.

package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors reported by Validate.
var (
	// ErrAsymmetricEdge indicates u→v without a matching v→u of equal weight.
	ErrAsymmetricEdge = errors.New("core: asymmetric edge")

	// ErrSelfLoop indicates an adjacency entry pointing back at its owner.
	ErrSelfLoop = errors.New("core: self-loop")

	// ErrDuplicateNeighbor indicates two entries for the same neighbour.
	ErrDuplicateNeighbor = errors.New("core: duplicate neighbor")

	// ErrDanglingNeighbor indicates an entry for a vertex that does not exist.
	ErrDanglingNeighbor = errors.New("core: dangling neighbor")
)

// Stats returns a snapshot of sizes and configuration.
func (g *Graph) Stats() GraphStats {
	return GraphStats{
		VertexCount: g.VertexCount(),
		EdgeCount:   g.edges,
		HighWater:   g.highWater,
		MaxVertices: g.maxVertices,
		Implicit:    g.implicit,
	}
}

// AddWeights returns a + b for non-negative weights, saturating at math.MaxInt64.
func AddWeights(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}

	return a + b
}

// PathWeight sums the edge weights along p, saturating at math.MaxInt64.
// It returns false when two consecutive ids are not adjacent. A single-vertex
// path weighs 0.
func (g *Graph) PathWeight(p Path) (int64, bool) {
	if len(p) == 0 {
		return 0, false
	}
	if !g.HasVertex(p[0]) {
		return 0, false
	}
	var total int64
	for i := 1; i < len(p); i++ {
		w, ok := g.Weight(p[i-1], p[i])
		if !ok {
			return 0, false
		}
		total = AddWeights(total, w)
	}

	return total, true
}

// Validate checks the structural invariants: no self-loops, at most one entry
// per neighbour, every entry mirrored with the same weight, no entries for
// missing vertices. The first violation is returned.
// Complexity: O(V + E·deg).
func (g *Graph) Validate() error {
	for id, l := range g.adj {
		if l == nil {
			continue
		}
		seen := make(map[int]struct{}, l.Len())
		for _, n := range l.All() {
			if n.ID == id {
				return fmt.Errorf("%w: vertex %d", ErrSelfLoop, id)
			}
			if _, dup := seen[n.ID]; dup {
				return fmt.Errorf("%w: %d in list of %d", ErrDuplicateNeighbor, n.ID, id)
			}
			seen[n.ID] = struct{}{}
			if !g.HasVertex(n.ID) {
				return fmt.Errorf("%w: %d in list of %d", ErrDanglingNeighbor, n.ID, id)
			}
			back, ok := g.Weight(n.ID, id)
			if !ok || back != n.Weight {
				return fmt.Errorf("%w: %d-%d", ErrAsymmetricEdge, id, n.ID)
			}
		}
	}

	return nil
}
