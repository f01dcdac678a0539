package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/list"
)

// queueItem is one frontier entry.
type queueItem struct {
	id    int
	depth int
}

// walker holds the state of one traversal.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   *list.Queue[queueItem]
	visited map[int]bool
	res     *BFSResult
	stopAt  int // vertex that ends the walk when visited, 0 = none
}

// BFS traverses g breadth-first from startID.
// On cancellation or hook error the partial result is returned with the error.
func BFS(g *core.Graph, startID int, opts ...Option) (*BFSResult, error) {
	w, err := newWalker(g, startID, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// FewestStops returns a path from start to end with the minimum number of
// hops, ignoring weights. Like dijkstra.ShortestPath it never fails: unknown
// or unreachable endpoints yield an empty path, start == end yields [start].
func FewestStops(g *core.Graph, start, end int, opts ...Option) core.Path {
	if g == nil || !g.HasVertex(end) {
		return core.Path{}
	}
	w, err := newWalker(g, start, opts)
	if err != nil {
		return core.Path{}
	}
	w.stopAt = end
	if err = w.loop(); err != nil {
		return core.Path{}
	}
	p, err := w.res.PathTo(end)
	if err != nil {
		return core.Path{}
	}

	return p
}

func newWalker(g *core.Graph, startID int, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   list.NewQueue[queueItem](),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(startID, 0, 0)

	return w, nil
}

// enqueue marks id as discovered at depth d via parent (0 for the root).
func (w *walker) enqueue(id int, d int, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != 0 {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue.Enqueue(queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for !w.queue.IsEmpty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item, _ := w.queue.Dequeue()
		w.opts.OnDequeue(item.id, item.depth)
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if w.stopAt != 0 && item.id == w.stopAt {
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	w.graph.ForEachNeighbor(item.id, func(n core.Neighbor) bool {
		if !w.visited[n.ID] && w.opts.FilterNeighbor(item.id, n.ID) {
			w.enqueue(n.ID, next, item.id)
		}

		return true
	})
}
