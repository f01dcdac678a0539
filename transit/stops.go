package transit

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// UnknownStop is the display name for ids that do not name a stop.
const UnknownStop = "unknown"

// Sort keys accepted by SortStops.
const (
	SortByName = "name"
	SortByID   = "id"
)

// AddStop registers a stop under the next free id and adds its vertex.
func (n *Network) AddStop(name string, x, y int) (Stop, error) {
	name, err := validName(name)
	if err != nil {
		return Stop{}, err
	}
	s := Stop{ID: n.nextStop, Name: name, X: x, Y: y}
	if !n.graph.AddVertex(s.ID) {
		return Stop{}, fmt.Errorf("%w: id %d exceeds %d", ErrGraphFull, s.ID, n.graph.MaxVertices())
	}
	n.stops.Append(s)
	n.nextStop++
	n.log.Info("stop added", zap.Int("id", s.ID), zap.String("name", s.Name))

	return s, nil
}

// Stop returns the stop with the given id.
func (n *Network) Stop(id int) (Stop, bool) {
	return n.stops.Find(id)
}

// StopName returns the stop's name or UnknownStop.
func (n *Network) StopName(id int) string {
	if s, ok := n.stops.Find(id); ok {
		return s.Name
	}

	return UnknownStop
}

// Stops returns all stops in their current list order.
func (n *Network) Stops() []Stop {
	return n.stops.Slice()
}

// RemoveStop deletes the stop and its vertex with every edge touching it.
// Routes that list the stop are left unchanged.
func (n *Network) RemoveStop(id int) bool {
	if !n.stops.RemoveKey(id) {
		return false
	}
	n.graph.RemoveVertex(id)
	n.log.Info("stop removed", zap.Int("id", id))

	return true
}

// RenameStop changes a stop's name in place.
func (n *Network) RenameStop(id int, name string) error {
	name, err := validName(name)
	if err != nil {
		return err
	}
	if !n.stops.Update(id, func(s Stop) Stop { s.Name = name; return s }) {
		return fmt.Errorf("%w: %d", ErrStopNotFound, id)
	}

	return nil
}

// SortStops reorders the stop list by name (case-insensitive, ties by id)
// or by id. The order is kept until the next sort.
func (n *Network) SortStops(by string) error {
	stops := n.stops.Slice()
	switch strings.ToLower(by) {
	case SortByName:
		sort.SliceStable(stops, func(i, j int) bool {
			a, b := strings.ToLower(stops[i].Name), strings.ToLower(stops[j].Name)
			if a != b {
				return a < b
			}

			return stops[i].ID < stops[j].ID
		})
	case SortByID:
		sort.SliceStable(stops, func(i, j int) bool { return stops[i].ID < stops[j].ID })
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSortKey, by)
	}
	n.stops.Reset(stops)

	return nil
}
