package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/transitnet/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on graph g. With WithFullTraversal it covers
// all components in ascending id order; otherwise it starts only from startID.
// Returns DFSResult, or the partial result and an error if aborted by context or hook.
func DFS(g *core.Graph, startID int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	res := &DFSResult{
		Order:   make([]int, 0, len(vertices)),
		Depth:   make(map[int]int, len(vertices)),
		Parent:  make(map[int]int, len(vertices)),
		Visited: make(map[int]bool, len(vertices)),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, v := range vertices {
			if !res.Visited[v] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := walker.traverse(startID, 0); err != nil {
		return res, err
	}

	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits vertex id at the given depth, recursing to neighbours.
// Recursion depth is bounded by the vertex count.
func (w *dfsWalker) traverse(id int, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	for _, n := range w.graph.Neighbors(id) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(n.ID) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[n.ID] {
			continue
		}
		// a depth-limited neighbour is not discovered
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[n.ID] = id
		if err := w.traverse(n.ID, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	w.res.Order = append(w.res.Order, id)

	return nil
}

// errTargetFound stops the walker once Reachable has its answer.
var errTargetFound = errors.New("dfs: target found")

// Reachable reports whether b can be reached from a. Both must be vertices.
// It runs DFS from a and stops as soon as b is visited.
// Complexity: O(V + E).
func Reachable(g *core.Graph, a, b int) bool {
	if g == nil || !g.HasVertex(a) || !g.HasVertex(b) {
		return false
	}
	_, err := DFS(g, a, WithOnVisit(func(id int) error {
		if id == b {
			return errTargetFound
		}
		return nil
	}))

	return errors.Is(err, errTargetFound)
}
