// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/transitnet/core"

const (
	methodComplete  = "Complete"
	minCompleteSize = 1
)

// Complete builds K_n: every pair of stops directly connected.
// Edges are emitted for i asc, j asc with j > i.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteSize); err != nil {
			return err
		}
		ids, err := addVertices(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(methodComplete, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
