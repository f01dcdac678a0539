// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall) with deterministic loop order.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.

package matrix

import (
	"fmt"
	"math"
)

const opFloydWarshall = "FloydWarshall"

// FloydWarshall closes m in place so that m[i][j] becomes the length of the
// shortest path from i to j.
//
// Loop order is fixed (k → i → j) and only strict improvements are written,
// so the result is reproducible bit for bit.
//
// Complexity: Time O(n^3), Extra space O(1).
func FloydWarshall(m *Dense) error {
	if m == nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, ErrBadShape)
	}
	if m.r != m.c {
		return fmt.Errorf("%s: %dx%d: %w", opFloydWarshall, m.r, m.c, ErrNonSquare)
	}
	floydWarshallInPlace(m)

	return nil
}

// floydWarshallInPlace assumes a square matrix with a zero diagonal.
func floydWarshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			// i cannot reach k, nothing to improve via k
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
