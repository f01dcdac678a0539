package flow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/list"
)

// residual maps u → v → remaining capacity of arc u→v.
type residual map[int]map[int]int64

func (r residual) add(u, v int, c int64) {
	m := r[u]
	if m == nil {
		m = make(map[int]int64)
		r[u] = m
	}
	m[v] = core.AddWeights(m[v], c)
}

// EdmondsKarp computes the maximum flow from source to sink.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return Result{}, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if !g.HasVertex(sink) {
		return Result{}, fmt.Errorf("%w: %d", ErrSinkNotFound, sink)
	}
	if source == sink {
		return Result{}, ErrSameEndpoints
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Build the residual network; an undirected edge gives c both ways.
	edges := g.Edges()
	capOf := make(map[core.Edge]int64, len(edges))
	res := make(residual, g.VertexCount())
	for _, e := range edges {
		c := o.Capacity(e)
		if c < 0 {
			return Result{}, EdgeError{From: e.From, To: e.To, Cap: c}
		}
		capOf[e] = c
		if c == 0 {
			continue
		}
		res.add(e.From, e.To, c)
		res.add(e.To, e.From, c)
	}

	// 2) Augment along shortest paths until the sink is cut off.
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("flow: %w", err)
		}
		parent := res.search(source, sink)
		if _, ok := parent[sink]; !ok {
			break
		}
		bottle := int64(-1)
		for v := sink; v != source; v = parent[v] {
			if c := res[parent[v]][v]; bottle < 0 || c < bottle {
				bottle = c
			}
		}
		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			res[u][v] -= bottle
			res.add(v, u, bottle)
		}
		total = core.AddWeights(total, bottle)
	}

	// 3) The source side of the cut is what the final search still reaches.
	side := res.search(source, sink)
	cut := make([]core.Edge, 0)
	for _, e := range edges {
		_, a := side[e.From]
		_, b := side[e.To]
		if a != b && capOf[e] > 0 {
			cut = append(cut, e)
		}
	}

	return Result{Value: total, Cut: cut}, nil
}

// search runs BFS over arcs with positive capacity and returns the parent of
// every reached vertex; source maps to itself. It stops once sink is reached.
func (r residual) search(source, sink int) map[int]int {
	parent := map[int]int{source: source}
	q := list.NewQueue[int]()
	q.Enqueue(source)
	for !q.IsEmpty() {
		u, _ := q.Dequeue()
		for v, c := range r[u] {
			if c <= 0 {
				continue
			}
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			if v == sink {
				return parent
			}
			q.Enqueue(v)
		}
	}

	return parent
}
