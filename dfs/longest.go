package dfs

import (
	"fmt"

	"github.com/katalvlaran/transitnet/core"
)

// frame is one level of the explicit search stack: the vertex it entered,
// the path weight up to it, its neighbour snapshot and the index of the next
// neighbour to try.
type frame struct {
	id   int
	sum  int64
	nbrs []core.Neighbor
	next int
}

// longestSearch is the per-call search context. Nothing is shared between calls.
type longestSearch struct {
	g    *core.Graph
	opts DFSOptions
	end  int

	maxDepth int // in edges

	visited map[int]bool
	stack   []frame
	weight  int64 // sum of the top frame, saturating

	best       core.Path
	bestWeight int64
	found      bool
	expansions int
}

// LongestPath returns the maximum-weight simple path from start to end.
//
// An unknown endpoint or an unreachable end yields an empty Path with no error.
// start == end yields [start] with weight 0. Among paths of equal weight the
// first one discovered (neighbours in insertion order) is kept: only a
// strictly heavier path replaces the current best.
//
// If the context is done or the expansion budget is spent before the search
// completes, the best path so far is returned with an error wrapping
// ErrSearchAborted and Complete == false.
func LongestPath(g *core.Graph, start, end int, opts ...Option) (*LongestResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !g.HasVertex(start) || !g.HasVertex(end) {
		return &LongestResult{Path: core.Path{}, Complete: true}, nil
	}
	if start == end {
		return &LongestResult{Path: core.Path{start}, Complete: true}, nil
	}
	if !Reachable(g, start, end) {
		return &LongestResult{Path: core.Path{}, Complete: true}, nil
	}

	s := &longestSearch{
		g:        g,
		opts:     dopts,
		end:      end,
		maxDepth: g.VertexCount() - 1,
		visited:  make(map[int]bool, g.VertexCount()),
	}
	if dopts.MaxDepth >= 0 && dopts.MaxDepth < s.maxDepth {
		s.maxDepth = dopts.MaxDepth
	}

	err := s.run(start)
	res := &LongestResult{
		Path:       s.best,
		Weight:     s.bestWeight,
		Expansions: s.expansions,
		Complete:   err == nil,
	}
	if res.Path == nil {
		res.Path = core.Path{}
	}

	return res, err
}

// run drives the frame stack until it empties or a bound trips.
func (s *longestSearch) run(start int) error {
	s.push(start, 0)
	for len(s.stack) > 0 {
		if err := s.opts.Ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrSearchAborted, err)
		}

		top := &s.stack[len(s.stack)-1]
		if top.id == s.end {
			s.record()
			s.pop()
			continue
		}
		if top.next >= len(top.nbrs) || len(s.stack)-1 >= s.maxDepth {
			s.pop()
			continue
		}

		n := top.nbrs[top.next]
		top.next++
		if s.visited[n.ID] {
			continue
		}
		if s.opts.FilterNeighbor != nil && !s.opts.FilterNeighbor(n.ID) {
			s.opts.SkippedNeighbors++
			continue
		}
		if s.opts.MaxExpansions > 0 && s.expansions >= s.opts.MaxExpansions {
			return fmt.Errorf("%w: expansion budget %d spent", ErrSearchAborted, s.opts.MaxExpansions)
		}
		s.push(n.ID, n.Weight)
	}

	return nil
}

// push enters id via an edge of weight w.
func (s *longestSearch) push(id int, w int64) {
	s.expansions++
	s.visited[id] = true
	s.weight = core.AddWeights(s.weight, w)
	s.stack = append(s.stack, frame{id: id, sum: s.weight, nbrs: s.g.Neighbors(id)})
}

// pop backtracks out of the top frame and releases its vertex.
func (s *longestSearch) pop() {
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.visited[top.id] = false
	s.weight = 0
	if len(s.stack) > 0 {
		s.weight = s.stack[len(s.stack)-1].sum
	}
}

// record keeps the current stack as best when it is strictly heavier.
func (s *longestSearch) record() {
	if s.found && s.weight <= s.bestWeight {
		return
	}
	s.found = true
	s.bestWeight = s.weight
	s.best = make(core.Path, len(s.stack))
	for i, f := range s.stack {
		s.best[i] = f.id
	}
}
