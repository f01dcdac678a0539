package transit

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// AddRoute registers a route and connects consecutive stops with the
// network's default travel time.
func (n *Network) AddRoute(name string, color Color, stops []int) (Route, error) {
	return n.AddRouteWeighted(name, color, stops, n.opts.defaultWeight)
}

// AddRouteWeighted registers a route and connects consecutive stops with
// weight w. Existing edges keep the lower of their current weight and w.
// Every stop must exist; a route needs at least two stops.
func (n *Network) AddRouteWeighted(name string, color Color, stops []int, w int64) (Route, error) {
	name, err := validName(name)
	if err != nil {
		return Route{}, err
	}
	if len(stops) < 2 {
		return Route{}, ErrEmptyRoute
	}
	if w < 0 {
		return Route{}, fmt.Errorf("%w: %d", ErrInvalidWeight, w)
	}
	for _, id := range stops {
		if !n.stops.Contains(id) {
			return Route{}, fmt.Errorf("%w: %d", ErrStopNotFound, id)
		}
	}

	r := Route{ID: n.nextRoute, Name: name, Color: color, Stops: append([]int(nil), stops...)}
	n.routes.Append(r)
	n.nextRoute++
	n.connectRoute(r, w)
	n.log.Info("route added",
		zap.Int("id", r.ID), zap.String("name", r.Name), zap.Ints("stops", r.Stops), zap.Int64("weight", w))

	return r.clone(), nil
}

// connectRoute adds an edge between each pair of consecutive stops.
// A stop repeated back to back is skipped since self-loops are not edges.
func (n *Network) connectRoute(r Route, w int64) {
	for i := 0; i+1 < len(r.Stops); i++ {
		n.graph.AddEdge(r.Stops[i], r.Stops[i+1], w)
	}
}

// Route returns the route with the given id.
func (n *Network) Route(id int) (Route, bool) {
	r, ok := n.routes.Find(id)
	if !ok {
		return Route{}, false
	}

	return r.clone(), true
}

// Routes returns all routes in insertion order.
func (n *Network) Routes() []Route {
	out := n.routes.Slice()
	for i := range out {
		out[i] = out[i].clone()
	}

	return out
}

// RemoveRoute deletes the route record. Edges stay in the graph since other
// routes or manual connections may share them; schedules of the route are removed.
func (n *Network) RemoveRoute(id int) bool {
	if !n.routes.RemoveKey(id) {
		return false
	}
	for _, s := range n.schedules.Slice() {
		if s.RouteID == id {
			n.schedules.RemoveKey(s.ID)
		}
	}
	n.log.Info("route removed", zap.Int("id", id))

	return true
}

// RouteTable lists every route with its terminal stop names and sorted departure times.
func (n *Network) RouteTable() []RouteRow {
	rows := make([]RouteRow, 0, n.routes.Len())
	for _, r := range n.routes.All() {
		row := RouteRow{ID: r.ID, Name: r.Name, Start: UnknownStop, End: UnknownStop, Times: []string{}}
		if len(r.Stops) > 0 {
			row.Start = n.StopName(r.Stops[0])
			row.End = n.StopName(r.Stops[len(r.Stops)-1])
		}
		for _, s := range n.schedules.All() {
			if s.RouteID == r.ID {
				row.Times = append(row.Times, s.Time)
			}
		}
		sort.Strings(row.Times)
		rows = append(rows, row)
	}

	return rows
}
