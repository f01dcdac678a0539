// File: types.go
// Role: Graph, Neighbor, Edge and Path types, options and the NewGraph constructor.

package core

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/transitnet/list"
)

// DefaultMaxVertices is the vertex ceiling applied when no WithMaxVertices option is given.
const DefaultMaxVertices = 100

// Neighbor is one adjacency entry: the vertex on the other side and the edge weight.
type Neighbor struct {
	// ID is the neighbouring vertex id.
	ID int

	// Weight is the cost of the edge (minutes, distance, ...).
	Weight int64
}

// Key identifies a Neighbor inside an adjacency list by its vertex id.
func (n Neighbor) Key() int { return n.ID }

// Edge is an undirected, weighted connection reported by Edges().
// From is always the smaller endpoint.
type Edge struct {
	From   int   `json:"from" yaml:"from"`
	To     int   `json:"to" yaml:"to"`
	Weight int64 `json:"weight" yaml:"weight"`
}

// Path is an ordered sequence of vertex ids from source to destination inclusive.
// An empty Path means that no path exists.
type Path []int

// Empty reports whether the path holds no vertices.
func (p Path) Empty() bool { return len(p) == 0 }

// String renders the path as "1 -> 3 -> 4", or "(none)" when empty.
func (p Path) String() string {
	if len(p) == 0 {
		return "(none)"
	}
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, " -> ")
}

// adjacency is the per-vertex neighbour list.
type adjacency = list.List[Neighbor, int]

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithMaxVertices sets the largest admissible vertex id. n <= 0 removes the ceiling.
func WithMaxVertices(n int) GraphOption {
	return func(g *Graph) {
		if n < 0 {
			n = 0
		}
		g.maxVertices = n
	}
}

// WithImplicitVertices switches to high-water-mark existence: any id in
// [1, HighWater()] is accepted as an edge endpoint even if it was never added.
func WithImplicitVertices() GraphOption {
	return func(g *Graph) { g.implicit = true }
}

// Graph is an undirected weighted graph over positive integer vertex ids.
//
// live holds explicitly known vertices; highWater is the largest id ever
// registered; adj maps a vertex id to its neighbour list. Every entry u→v in
// adj has a mirror v→u with the same weight.
type Graph struct {
	maxVertices int  // 0 = unbounded
	implicit    bool // legacy high-water-mark existence

	highWater int
	live      map[int]struct{}
	adj       map[int]*adjacency
	edges     int // undirected edge count
}

// NewGraph creates an empty Graph. Without options the vertex ceiling is
// DefaultMaxVertices and existence is explicit.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		maxVertices: DefaultMaxVertices,
		live:        make(map[int]struct{}),
		adj:         make(map[int]*adjacency),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// newAdjacency allocates an empty neighbour list keyed by neighbour id.
func newAdjacency() *adjacency {
	return list.NewKeyed[Neighbor]()
}

// GraphStats is a read-only snapshot of sizes and configuration.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	HighWater   int
	MaxVertices int
	Implicit    bool
}
