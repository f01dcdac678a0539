// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/transitnet/core"
)

// Constructor adds one topology to g using cfg. Constructors validate their
// parameters first and return sentinel errors, never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts and applies
// every constructor in order. The first error is wrapped with "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices registers ids cfg.id(0..n-1) and returns them.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]int, error) {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.id(i)
		if !g.AddVertex(ids[i]) {
			return nil, builderErrorf(method, "AddVertex(%d): %w", ids[i], ErrConstructFailed)
		}
	}

	return ids, nil
}

// addEdge connects u and v with the next configured weight.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	if !g.AddEdge(u, v, cfg.weight()) {
		return builderErrorf(method, "AddEdge(%d,%d): %w", u, v, ErrConstructFailed)
	}

	return nil
}

// validateMin rejects got < min with ErrTooFewVertices.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "n=%d < min=%d: %w", got, min, ErrTooFewVertices)
	}

	return nil
}
