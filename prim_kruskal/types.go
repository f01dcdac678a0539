package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/transitnet/core"
)

// ErrGraphNil indicates a nil graph.
var ErrGraphNil = errors.New("prim_kruskal: graph is nil")

// ErrRootNotFound indicates that Prim's root is not a vertex.
var ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

// ErrDisconnected indicates that no single spanning tree covers all vertices.
// An empty graph is reported as disconnected.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates a Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm.
const MethodKruskal = "kruskal"

// MSTOptions configures Compute.
type MSTOptions struct {
	// Method is MethodPrim or MethodKruskal.
	Method string

	// Root is Prim's start vertex. Zero means the smallest vertex id.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod selects the algorithm.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets Prim's start vertex. Ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions selects Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the selected algorithm and returns the tree edges and their total weight.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		root := o.Root
		if root == 0 && g != nil {
			if vs := g.Vertices(); len(vs) > 0 {
				root = vs[0]
			}
		}
		return Prim(g, root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// lessEdge orders edges by weight, then endpoints.
func lessEdge(a, b core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}
