// Package dijkstra computes minimum-weight routes between stops of a
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra expands vertices in order of increasing distance from a single
//     source using a binary min-heap (container/heap).
//   - Decrease-key is lazy: an improved distance pushes a fresh heap entry and
//     stale entries are skipped when popped (their vertex is already settled).
//   - ShortestPath wraps Dijkstra for the common "stop A to stop B" query and
//     rebuilds the route by walking the predecessor map back from the target.
//
// Options:
//
//   - Source(id):             starting vertex (required).
//   - WithReturnPath():       return the predecessor map.
//   - WithTarget(id):         stop as soon as id is settled.
//   - WithMaxDistance(d):     do not explore beyond distance d.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable.
//
// ShortestPath never fails: an unknown endpoint, an unreachable destination
// or a predecessor walk that does not end at the source all yield an empty
// core.Path. A query from a stop to itself yields the one-element path.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold one entry per relaxation.
package dijkstra
