package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/transitnet/core"
)

// Sentinel errors for BFS.
var (
	// ErrStartVertexNotFound is returned when the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation indicates that an option received an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex the traversal did not reach.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior.
type Option func(*BFSOptions)

// BFSOptions holds traversal parameters.
type BFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnEnqueue is called when a vertex is discovered and queued.
	OnEnqueue func(id int, depth int)

	// OnDequeue is called immediately before a vertex is visited.
	OnDequeue func(id int, depth int)

	// OnVisit is called when a vertex is visited; an error aborts the traversal.
	OnVisit func(id int, depth int) error

	// MaxDepth > 0 limits the hop count; 0 means no limit.
	MaxDepth int

	// FilterNeighbor decides whether the hop curr→neighbor may be taken.
	FilterNeighbor func(curr, neighbor int) bool

	// err records an invalid option and is returned by BFS.
	err error
}

// DefaultOptions returns BFSOptions with no-op hooks, no depth limit and no filter.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue installs a hook called on discovery.
func WithOnEnqueue(fn func(id int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue installs a hook called before each visit.
func WithOnDequeue(fn func(id int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs a hook called on each visit.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits exploration to d hops. d == 0 means no limit;
// a negative d makes BFS fail with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs a hop filter.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a traversal.
type BFSResult struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo rebuilds the hop-minimal path from the start vertex to dest.
func (r *BFSResult) PathTo(dest int) (core.Path, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := core.Path{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
