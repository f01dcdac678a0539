// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/transitnet/core"

const (
	methodPath  = "Path"
	minPathSize = 2
)

// Path builds a line of n stops: id(0)–id(1)–…–id(n-1), the shape of a
// single bus route. Edges are emitted left to right.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathSize); err != nil {
			return err
		}
		ids, err := addVertices(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(methodPath, g, cfg, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
