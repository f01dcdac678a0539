package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/transitnet/core"
)

// Prim grows a minimum spanning tree from root. Returned edges are
// normalised to From < To and listed in the order they joined the tree.
//
// Errors: ErrGraphNil, ErrRootNotFound, and ErrDisconnected when some vertex
// cannot be reached from root (or the graph is empty).
func Prim(g *core.Graph, root int) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if !g.HasVertex(root) {
		return nil, 0, ErrRootNotFound
	}

	visited := make(map[int]bool, n)
	tree := make([]core.Edge, 0, n-1)
	var total int64
	pq := &edgePQ{}

	visit := func(v int) {
		visited[v] = true
		g.ForEachNeighbor(v, func(nb core.Neighbor) bool {
			if !visited[nb.ID] {
				heap.Push(pq, candidate{from: v, to: nb.ID, weight: nb.Weight})
			}
			return true
		})
	}

	visit(root)
	for pq.Len() > 0 && len(tree) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		tree = append(tree, c.edge())
		total = core.AddWeights(total, c.weight)
		visit(c.to)
	}

	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// candidate is an edge leaving the tree: from is inside, to outside.
type candidate struct {
	from, to int
	weight   int64
}

func (c candidate) edge() core.Edge {
	if c.from < c.to {
		return core.Edge{From: c.from, To: c.to, Weight: c.weight}
	}

	return core.Edge{From: c.to, To: c.from, Weight: c.weight}
}

// edgePQ is a min-heap of candidates ordered like lessEdge.
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool { return lessEdge(pq[i].edge(), pq[j].edge()) }

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(candidate)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
