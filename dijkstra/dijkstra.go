package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/transitnet/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex id → minimum distance (Unreachable if not reached).
//   - prev: predecessor map when WithReturnPath is set, nil otherwise.
//     prev[v] == u means the shortest path to v arrives from u; the source
//     and unreached vertices have no entry.
//   - err:  ErrNoSource, ErrNilGraph or ErrVertexNotFound.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[int]int64, map[int]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.HasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]int64, len(vertices)),
		settled: make(map[int]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int]int, len(vertices))
	}

	r.init(vertices)
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph   // read-only
	options Options       // source, caps, target
	dist    map[int]int64 // best known distance from the source
	prev    map[int]int   // predecessor on the best known path, nil unless ReturnPath
	settled map[int]bool  // distance is final
	pq      nodePQ        // lazy min-heap
}

// init sets every distance to Unreachable and pushes the source at distance 0.
func (r *runner) init(vertices []int) {
	for _, v := range vertices {
		r.dist[v] = Unreachable
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unsettled vertex until the heap drains, the
// distance cap is exceeded or the target is settled.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// stale entry from a lazy decrease-key
		if r.settled[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[u] = true
		if r.options.HasTarget && u == r.options.Target {
			return
		}

		r.relax(u)
	}
}

// relax tries to improve each neighbour of the settled vertex u.
func (r *runner) relax(u int) {
	du := r.dist[u]
	r.g.ForEachNeighbor(u, func(n core.Neighbor) bool {
		if n.Weight >= r.options.InfEdgeThreshold || r.settled[n.ID] {
			return true
		}
		nd := core.AddWeights(du, n.Weight)
		if nd > r.options.MaxDistance || nd >= r.dist[n.ID] {
			return true
		}
		r.dist[n.ID] = nd
		if r.prev != nil {
			r.prev[n.ID] = u
		}
		heap.Push(&r.pq, &nodeItem{id: n.ID, dist: nd})

		return true
	})
}

// nodeItem is a heap entry: a vertex and the distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by id so
// that equal-weight alternatives resolve deterministically.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
