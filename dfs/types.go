// Package dfs defines types and options for depth-first traversal and the
// longest simple path search.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/transitnet/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or LongestPath.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrSearchAborted indicates that LongestPath stopped before exhausting
	// the search space; the result holds the best path found so far.
	ErrSearchAborted = errors.New("dfs: longest path search aborted")
)

// Option configures optional behavior of DFS and LongestPath.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal and search.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	OnExit func(id int) error

	// MaxDepth, if non-negative, limits depth in edges from the start vertex.
	// Default is -1 (no limit beyond the vertex count).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbour before it is entered.
	// Return false to skip it.
	FilterNeighbor func(id int) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex (forest traversal).
	FullTraversal bool

	// MaxExpansions caps the number of search frames LongestPath may push.
	// Zero means unlimited.
	MaxExpansions int

	// SkippedNeighbors counts neighbours rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbour filtering
//   - Single-source traversal
//   - No expansion budget
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit edges.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips every neighbour for which fn returns false.
func WithFilterNeighbor(fn func(id int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal makes DFS restart from each unvisited vertex.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// WithMaxExpansions caps the number of frames LongestPath may push.
// n <= 0 removes the cap.
func WithMaxExpansions(n int) Option {
	return func(o *DFSOptions) {
		if n < 0 {
			n = 0
		}
		o.MaxExpansions = n
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Depth maps each vertex id to its distance (#edges) from its tree root.
	Depth map[int]int

	// Parent maps each vertex id to the vertex it was first discovered from.
	// Roots do not appear.
	Parent map[int]int

	// Visited flags which vertices were reached.
	Visited map[int]bool

	// SkippedNeighbors reports how many neighbours FilterNeighbor rejected.
	SkippedNeighbors int
}

// LongestResult is the outcome of LongestPath.
type LongestResult struct {
	// Path is the heaviest simple path found, start..end inclusive.
	// Empty when no path exists.
	Path core.Path

	// Weight is the sum of edge weights along Path.
	Weight int64

	// Expansions is the number of search frames pushed.
	Expansions int

	// Complete is true when the whole search space was explored, so Path is optimal.
	Complete bool
}
