// Package core provides the weighted, undirected stop graph that every routing
// query in transitnet runs against.
//
// The Graph G = (V,E) is deliberately small and passive:
//
//   - Vertices are positive integer ids (stop ids). Existence is tracked
//     explicitly in a live set next to a high-water mark of the largest id seen.
//   - Each vertex owns an insertion-ordered adjacency list of Neighbor pairs
//     (neighbour id, weight) kept in a list.List keyed by neighbour id.
//   - Every undirected edge is stored twice (u→v and v→u) with the same weight.
//     AddEdge and RemoveVertex are the only mutators and they keep both
//     directions in step, so the symmetry invariant holds by construction.
//   - Algorithms (dijkstra, dfs, bfs, matrix) read the adjacency through
//     ForEachNeighbor/Neighbors and keep their own working state; the graph is
//     never mutated by a query.
//
// Invalid input is a no-op, not an error:
//
//	AddVertex(id)            false when id < 1 or id exceeds MaxVertices.
//	AddEdge(from, to, w)     false when an endpoint is not a vertex, from == to or w < 0.
//	RemoveVertex(id)         false when id is not a vertex.
//
// Repeating AddEdge for an existing pair never duplicates the entry and never
// raises the weight: both directions take min(old, new). This makes reloading
// a persisted network record by record idempotent.
//
// Configuration (GraphOption):
//
//	WithMaxVertices(n)       ceiling on vertex ids; DefaultMaxVertices (100) unless set, 0 = none.
//	WithImplicitVertices()   legacy mode: every id ≤ HighWater() counts as a vertex.
//
// Complexity:
//
//	AddVertex, HasVertex     O(1)
//	AddEdge, Weight          O(deg(from))
//	RemoveVertex             O(V + E) (scrubs every adjacency list)
//	Neighbors                O(deg)
//	Vertices, Edges          O(V log V), O(E log E)
//
// A Graph is not safe for concurrent use; callers serialise access.
package core
