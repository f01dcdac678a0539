package transit

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// AddSchedule adds a departure of an existing route at hhmm (24h "HH:MM").
func (n *Network) AddSchedule(routeID int, hhmm string) (Schedule, error) {
	if !n.routes.Contains(routeID) {
		return Schedule{}, fmt.Errorf("%w: %d", ErrRouteNotFound, routeID)
	}
	t, err := ParseTime(hhmm)
	if err != nil {
		return Schedule{}, err
	}
	s := Schedule{ID: n.nextSchedule, RouteID: routeID, Time: t}
	n.schedules.Append(s)
	n.nextSchedule++
	n.log.Info("schedule added", zap.Int("id", s.ID), zap.Int("route", routeID), zap.String("time", t))

	return s, nil
}

// Schedule returns the schedule with the given id.
func (n *Network) Schedule(id int) (Schedule, bool) {
	return n.schedules.Find(id)
}

// Schedules returns all schedules in insertion order.
func (n *Network) Schedules() []Schedule {
	return n.schedules.Slice()
}

// SchedulesFor returns the departures of one route ordered by time.
func (n *Network) SchedulesFor(routeID int) []Schedule {
	var out []Schedule
	for _, s := range n.schedules.All() {
		if s.RouteID == routeID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })

	return out
}

// RemoveSchedule deletes one departure.
func (n *Network) RemoveSchedule(id int) bool {
	if !n.schedules.RemoveKey(id) {
		return false
	}
	n.log.Info("schedule removed", zap.Int("id", id))

	return true
}
