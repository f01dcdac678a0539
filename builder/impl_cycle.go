// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/transitnet/core"

const (
	methodCycle  = "Cycle"
	minCycleSize = 3
)

// Cycle builds a circular line of n stops. Edges i–(i+1) first, then the
// closing edge (n-1)–0.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleSize); err != nil {
			return err
		}
		ids, err := addVertices(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
