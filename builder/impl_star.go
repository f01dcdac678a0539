// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/transitnet/core"

const (
	methodStar  = "Star"
	minStarSize = 2
)

// Star builds a hub id(0) with n-1 spokes, a terminal feeding outlying stops.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, n, minStarSize); err != nil {
			return err
		}
		ids, err := addVertices(methodStar, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(methodStar, g, cfg, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
