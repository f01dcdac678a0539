// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major dense matrix and the all-pairs
// travel-time table built on it.
//
// Dense is the storage: r×c float64 values, At/Set return errors instead of
// panicking, loops run in a fixed order so results are deterministic.
//
// FloydWarshall closes a square distance matrix in place (+Inf = no path,
// diagonal 0). FromGraph builds that matrix from a core.Graph, with one row
// per stop in ascending id order, and wraps the result in a Table that
// answers Distance(from, to) by stop id.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c).
//   - FloydWarshall: O(n³) time, O(1) extra space.
//   - FromGraph: O(V² + E) to build, plus FloydWarshall.
package matrix
