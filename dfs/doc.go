// Package dfs implements depth-first exploration of a core.Graph: a plain
// traversal with hooks, a reachability probe, and the exhaustive
// backtracking search for the longest simple path between two stops.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports pre- and post-order hooks, cancellation via context.Context,
//     depth limiting, neighbour filtering and forest traversal.
//   - Reachable: DFS from a that stops once b is visited.
//   - LongestPath: maximum-weight simple path from start to end. Every simple
//     path is enumerated with an explicit frame stack; a visited set keeps
//     each attempt simple and a vertex is released again on backtrack so that
//     sibling branches may use it.
//
// Longest simple path is NP-hard. The search is exponential in the worst case
// and is only meant for small networks (≈100 stops). It is bounded by:
//
//   - depth: at most VertexCount()-1 edges, or WithMaxDepth(n) if smaller;
//   - budget: WithMaxExpansions(n) caps the number of frames pushed;
//   - context: WithContext(ctx) cancellation or deadline.
//
// When a bound stops the search early LongestPath returns the best path found
// so far together with an error wrapping ErrSearchAborted.
//
// Options:
//
//   - WithContext(ctx)          cancellation and deadlines.
//   - WithOnVisit(fn)           pre-order hook on vertex discovery; error aborts traversal.
//   - WithOnExit(fn)            post-order hook after exploring descendants.
//   - WithMaxDepth(limit)       depth limit in edges (>= 0).
//   - WithFilterNeighbor(fn)    return false to skip a neighbour (closed stops).
//   - WithFullTraversal()       DFS only: restart from every unvisited vertex.
//   - WithMaxExpansions(n)      LongestPath only: frame budget, 0 = unlimited.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if the start vertex is missing (DFS only).
//   - ErrSearchAborted          LongestPath stopped by context or budget.
//   - context.Canceled / DeadlineExceeded from DFS.
//   - any error returned by OnVisit or OnExit.
//
// Complexity:
//
//   - DFS, Reachable: O(V + E) time, O(V) memory.
//   - LongestPath:    O(V!) time in the worst case, O(V + E) memory.
package dfs
