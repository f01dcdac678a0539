// Package flow computes maximum flow and minimum cuts between two stops of
// an undirected *core.Graph.
//
// Every undirected edge is a pair of opposite arcs that share one capacity
// budget in each direction. By default the capacity is the edge weight;
// WithUnitCapacity counts edge-disjoint connections instead, which is how
// transit.Network measures the resilience of a trip.
//
// # Algorithm
//
//   - Edmonds–Karp: breadth-first search for the shortest augmenting path.
//   - Time:   O(V · E²).
//   - Memory: O(V + E) for the residual map and BFS queue.
//
// After the flow is saturated, the vertices still reachable from the source
// in the residual network define a minimum cut. Result.Cut lists the original
// edges that cross it.
//
// # Errors
//
//   - ErrGraphNil        nil graph.
//   - ErrSourceNotFound  source is not a vertex.
//   - ErrSinkNotFound    sink is not a vertex.
//   - ErrSameEndpoints   source == sink.
//   - EdgeError          a capacity function returned a negative value.
//
// Context cancellation aborts the search and returns ctx.Err() wrapped.
package flow
