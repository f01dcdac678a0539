package transit

import (
	"fmt"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/matrix"
)

// Snapshot is the persistent form of a Network: plain records plus one entry
// per undirected edge. Codecs and the sqlite repository read and write it.
type Snapshot struct {
	Stops     []Stop      `json:"stops" yaml:"stops"`
	Routes    []Route     `json:"routes" yaml:"routes"`
	Schedules []Schedule  `json:"schedules" yaml:"schedules"`
	Edges     []core.Edge `json:"edges" yaml:"edges"`
}

// Snapshot copies the current state. Stops keep their list order.
func (n *Network) Snapshot() Snapshot {
	return Snapshot{
		Stops:     n.Stops(),
		Routes:    n.Routes(),
		Schedules: n.Schedules(),
		Edges:     n.graph.Edges(),
	}
}

// FromSnapshot rebuilds a Network from snap. Ids are kept; next ids become
// max+1 per record type. Route edges are not re-derived: the graph is exactly
// snap.Edges, so persisted weights survive a round trip. Edges that name a
// missing stop, self-loops and negative weights are rejected.
func FromSnapshot(snap Snapshot, opts ...Option) (*Network, error) {
	return NewNetwork(opts...).build(snap)
}

// Restore replaces the contents of n with snap, keeping the options n was
// created with. On error n is left unchanged.
func (n *Network) Restore(snap Snapshot) error {
	fresh, err := newNetwork(n.opts).build(snap)
	if err != nil {
		return err
	}
	*n = *fresh

	return nil
}

// build fills the empty network n from snap.
func (n *Network) build(snap Snapshot) (*Network, error) {
	for _, s := range snap.Stops {
		if n.stops.Contains(s.ID) {
			return nil, fmt.Errorf("transit: duplicate stop id %d", s.ID)
		}
		if !n.graph.AddVertex(s.ID) {
			return nil, fmt.Errorf("%w: stop id %d", ErrGraphFull, s.ID)
		}
		n.stops.Append(s)
		n.nextStop = max(n.nextStop, s.ID+1)
	}
	for _, r := range snap.Routes {
		if n.routes.Contains(r.ID) {
			return nil, fmt.Errorf("transit: duplicate route id %d", r.ID)
		}
		n.routes.Append(r.clone())
		n.nextRoute = max(n.nextRoute, r.ID+1)
	}
	for _, s := range snap.Schedules {
		if n.schedules.Contains(s.ID) {
			return nil, fmt.Errorf("transit: duplicate schedule id %d", s.ID)
		}
		t, err := ParseTime(s.Time)
		if err != nil {
			return nil, fmt.Errorf("transit: schedule %d: %w", s.ID, err)
		}
		s.Time = t
		n.schedules.Append(s)
		n.nextSchedule = max(n.nextSchedule, s.ID+1)
	}
	for _, e := range snap.Edges {
		if !n.Connect(e.From, e.To, e.Weight) {
			return nil, fmt.Errorf("transit: invalid edge %d-%d weight %d", e.From, e.To, e.Weight)
		}
	}

	return n, nil
}

// TravelTimes returns the all-pairs minimum travel time table.
func (n *Network) TravelTimes() (*matrix.Table, error) {
	return matrix.FromGraph(n.graph)
}
