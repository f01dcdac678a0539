package transit

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/flow"
	"github.com/katalvlaran/transitnet/prim_kruskal"
)

// Backbone is the cheapest set of links that keeps every connected part of
// the network connected.
type Backbone struct {
	Edges      []core.Edge `json:"edges"`
	Weight     int64       `json:"weight"`
	Components int         `json:"components"`
}

// Backbone computes a minimum spanning forest of the stop graph.
// Isolated stops count as their own component.
func (n *Network) Backbone() (Backbone, error) {
	edges, total, err := prim_kruskal.SpanningForest(n.graph)
	if err != nil {
		return Backbone{}, err
	}
	if edges == nil {
		edges = []core.Edge{}
	}
	n.log.Debug("backbone computed", zap.Int("edges", len(edges)), zap.Int64("weight", total))

	return Backbone{
		Edges:      edges,
		Weight:     total,
		Components: n.graph.VertexCount() - len(edges),
	}, nil
}

// Resilience describes how well two stops are connected: Paths trips that
// share no segment, and the Cut segments whose closure separates them.
type Resilience struct {
	From  int         `json:"from"`
	To    int         `json:"to"`
	Paths int         `json:"paths"`
	Cut   []core.Edge `json:"cut"`
}

// Resilience counts segment-disjoint trips between from and to with a unit
// capacity max flow. Unconnected stops give zero paths and an empty cut.
func (n *Network) Resilience(ctx context.Context, from, to int) (Resilience, error) {
	for _, id := range []int{from, to} {
		if !n.stops.Contains(id) {
			return Resilience{}, fmt.Errorf("%w: %d", ErrStopNotFound, id)
		}
	}
	if from == to {
		return Resilience{}, fmt.Errorf("transit: resilience of stop %d to itself: %w", from, flow.ErrSameEndpoints)
	}
	res, err := flow.EdmondsKarp(ctx, n.graph, from, to, flow.WithUnitCapacity())
	if err != nil {
		return Resilience{}, err
	}

	return Resilience{From: from, To: to, Paths: int(res.Value), Cut: res.Cut}, nil
}
