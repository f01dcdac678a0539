// Package prim_kruskal computes minimum spanning trees of a *core.Graph.
//
// In a transit network the minimum spanning tree is the backbone: the
// cheapest set of connections that keeps every stop reachable. Two classic
// algorithms are provided and agree on total weight:
//
//   - Kruskal sorts all edges by weight and joins components with a
//     disjoint-set forest (path compression, union by rank).
//     O(E log E) time, O(V + E) memory.
//   - Prim grows one tree from a root using a binary heap of candidate edges.
//     O(E log V) time, O(V + E) memory.
//
// Both require a connected graph and return ErrDisconnected otherwise.
// SpanningForest relaxes that: it returns a minimum spanning tree for every
// connected component, which is what a network with separate lines needs.
//
// Ties between equal weights break by (From, To), so results are deterministic.
package prim_kruskal
