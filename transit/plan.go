package transit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/transitnet/bfs"
	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/dfs"
	"github.com/katalvlaran/transitnet/dijkstra"
)

// PlanKind selects the routing question a Plan answers.
type PlanKind string

// Plan kinds.
const (
	Shortest    PlanKind = "shortest"
	Longest     PlanKind = "longest"
	Established PlanKind = "established"
	Fewest      PlanKind = "fewest"
)

// PlanKinds lists every accepted kind in display order.
var PlanKinds = []PlanKind{Shortest, Longest, Established, Fewest}

// ParsePlanKind accepts a kind name case-insensitively.
func ParsePlanKind(s string) (PlanKind, error) {
	k := PlanKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range PlanKinds {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPlanKind, s)
}

// Plan is the answer to a routing question. Empty Stops means no route was found.
type Plan struct {
	Kind   PlanKind `json:"kind"`
	From   int      `json:"from"`
	To     int      `json:"to"`
	Stops  []int    `json:"stops"`
	Names  []string `json:"names"`
	Weight int64    `json:"weight"`
	// RouteID is set for established plans.
	RouteID int `json:"route_id,omitempty"`
	// Partial is true when a longest search hit a limit; Stops is the best found.
	Partial bool `json:"partial,omitempty"`
}

// Found reports whether the plan holds a route.
func (p Plan) Found() bool { return len(p.Stops) > 0 }

// String renders "A -> B -> C (12 min)" or "no route".
func (p Plan) String() string {
	if !p.Found() {
		return "no route"
	}

	return fmt.Sprintf("%s (%d min)", strings.Join(p.Names, " -> "), p.Weight)
}

// Plan answers a routing question between two stops.
//
// Unknown stops and unreachable destinations are not errors: they produce a
// Plan without stops. Errors are reserved for an unknown kind and for a
// longest search cut short by ctx, the search timeout or the expansion
// budget; in that case the best route found so far is returned together with
// an error wrapping dfs.ErrSearchAborted.
func (n *Network) Plan(ctx context.Context, kind PlanKind, from, to int) (Plan, error) {
	p := Plan{Kind: kind, From: from, To: to}
	var path core.Path

	switch kind {
	case Shortest:
		path = dijkstra.ShortestPath(n.graph, from, to)
	case Fewest:
		path = bfs.FewestStops(n.graph, from, to)
	case Established:
		path, p.RouteID = n.established(from, to)
	case Longest:
		res, err := n.longest(ctx, from, to)
		if res != nil {
			path = res.Path
			p.Partial = !res.Complete
		}
		if err != nil {
			n.fill(&p, path)
			n.log.Warn("longest plan aborted",
				zap.Int("from", from), zap.Int("to", to), zap.Bool("found", p.Found()), zap.Error(err))

			return p, err
		}
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownPlanKind, string(kind))
	}

	n.fill(&p, path)
	n.log.Debug("plan", zap.String("kind", string(kind)), zap.Int("from", from), zap.Int("to", to),
		zap.Ints("stops", p.Stops), zap.Int64("weight", p.Weight))

	return p, nil
}

// fill copies path into p with stop names and the summed weight.
func (n *Network) fill(p *Plan, path core.Path) {
	p.Stops = append([]int{}, path...)
	p.Names = make([]string, len(path))
	for i, id := range path {
		p.Names[i] = n.StopName(id)
	}
	if w, ok := n.graph.PathWeight(path); ok {
		p.Weight = w
	}
}

// longest runs the bounded longest simple path search.
func (n *Network) longest(ctx context.Context, from, to int) (*dfs.LongestResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if n.opts.searchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.opts.searchTimeout)
		defer cancel()
	}
	opts := []dfs.Option{dfs.WithContext(ctx), dfs.WithMaxExpansions(n.opts.maxExpansions)}
	if n.opts.maxDepth > 0 {
		opts = append(opts, dfs.WithMaxDepth(n.opts.maxDepth))
	}

	res, err := dfs.LongestPath(n.graph, from, to, opts...)
	if err != nil && !errors.Is(err, dfs.ErrSearchAborted) {
		return nil, err
	}

	return res, err
}

// established returns the stretch of the first route that serves from and
// later to. Positions are the last occurrence of each stop in the route, so a
// loop line that passes a stop twice uses its final visit. The stretch may
// include stops whose vertex has since been removed; such plans are rejected.
func (n *Network) established(from, to int) (core.Path, int) {
	if from == to || !n.graph.HasVertex(from) || !n.graph.HasVertex(to) {
		return core.Path{}, 0
	}
	for _, r := range n.routes.All() {
		fi, ti := -1, -1
		for i, id := range r.Stops {
			if id == from {
				fi = i
			}
			if id == to {
				ti = i
			}
		}
		if fi < 0 || ti < 0 || fi >= ti {
			continue
		}
		seg := append(core.Path{}, r.Stops[fi:ti+1]...)
		if _, ok := n.graph.PathWeight(seg); !ok {
			continue
		}

		return seg, r.ID
	}

	return core.Path{}, 0
}
