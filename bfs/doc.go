// Package bfs provides breadth-first search over a core.Graph, ignoring edge
// weights: the fewest-stops view of the network.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → hops from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//   - WithFilterNeighbor prunes individual hops; WithMaxDepth bounds the level.
//   - FewestStops returns a path with the minimum number of hops between two stops.
//
// The frontier is a list.Queue, the same FIFO the rest of transitnet uses.
//
// Determinism
//
//	Neighbours are enqueued in adjacency insertion order, so the visit sequence
//	and the chosen path among equal-hop alternatives are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
