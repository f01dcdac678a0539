package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/katalvlaran/transitnet/dfs"
	"github.com/katalvlaran/transitnet/logging"
	"github.com/katalvlaran/transitnet/transit"
)

type addStopRequest struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

type addRouteRequest struct {
	Name string `json:"name"`
	// Color is "r;g;b"; empty means black.
	Color string `json:"color"`
	Stops []int  `json:"stops"`
	// Weight overrides the default travel time between consecutive stops.
	Weight *int64 `json:"weight"`
}

type addScheduleRequest struct {
	RouteID int    `json:"route_id"`
	Time    string `json:"time"`
}

type connectRequest struct {
	From   int   `json:"from"`
	To     int   `json:"to"`
	Weight int64 `json:"weight"`
}

type travelTimesResponse struct {
	IDs []int `json:"ids"`
	// Rows[i][j] is the minimum travel time from IDs[i] to IDs[j], -1 when unreachable.
	Rows [][]int64 `json:"rows"`
}

// mutate runs fn under the lock and persists the network when fn succeeds.
// fn returns the status and body of the response. When the save fails the
// network is rolled back so memory and store stay in step.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, label string, fn func() (int, any, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prev transit.Snapshot
	if s.store != nil {
		prev = s.network.Snapshot()
	}
	status, body, err := fn()
	if err != nil {
		writeError(w, statusOf(err), err.Error())
		return
	}
	if status >= 400 {
		writeJSON(w, status, body)
		return
	}
	if err := s.persist(r.Context(), label); err != nil {
		logging.ErrorContext(r.Context(), "persist failed, rolling back", "error", err)
		if rerr := s.network.Restore(prev); rerr != nil {
			logging.ErrorContext(r.Context(), "rollback failed", "error", rerr)
		}
		writeError(w, http.StatusInternalServerError, "persist: "+err.Error())
		return
	}
	if body == nil {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, status, body)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.network.Stats())
}

func (s *Server) handleNetwork(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.network.Snapshot())
}

func (s *Server) handleListStops(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.network.Stops())
}

func (s *Server) handleGetStop(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stop, ok := s.network.Stop(pathID(r))
	if !ok {
		writeError(w, http.StatusNotFound, transit.ErrStopNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, stop)
}

func (s *Server) handleAddStop(w http.ResponseWriter, r *http.Request) {
	var req addStopRequest
	if !decode(w, r, &req) {
		return
	}
	s.mutate(w, r, "add stop", func() (int, any, error) {
		stop, err := s.network.AddStop(req.Name, req.X, req.Y)
		return http.StatusCreated, stop, err
	})
}

func (s *Server) handleRemoveStop(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, "remove stop", func() (int, any, error) {
		if !s.network.RemoveStop(pathID(r)) {
			return http.StatusNotFound, errorResponse{transit.ErrStopNotFound.Error()}, nil
		}
		return http.StatusNoContent, nil, nil
	})
}

func (s *Server) handleSortStops(w http.ResponseWriter, r *http.Request) {
	by := r.URL.Query().Get("by")
	if by == "" {
		by = transit.SortByName
	}
	s.mutate(w, r, "sort stops", func() (int, any, error) {
		if err := s.network.SortStops(by); err != nil {
			return 0, nil, err
		}
		return http.StatusOK, s.network.Stops(), nil
	})
}

func (s *Server) handleListRoutes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.network.Routes())
}

func (s *Server) handleAddRoute(w http.ResponseWriter, r *http.Request) {
	var req addRouteRequest
	if !decode(w, r, &req) {
		return
	}
	color := transit.Black
	if req.Color != "" {
		c, err := transit.ParseColor(req.Color)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		color = c
	}
	s.mutate(w, r, "add route", func() (int, any, error) {
		var (
			route transit.Route
			err   error
		)
		if req.Weight != nil {
			route, err = s.network.AddRouteWeighted(req.Name, color, req.Stops, *req.Weight)
		} else {
			route, err = s.network.AddRoute(req.Name, color, req.Stops)
		}
		return http.StatusCreated, route, err
	})
}

func (s *Server) handleRemoveRoute(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, "remove route", func() (int, any, error) {
		if !s.network.RemoveRoute(pathID(r)) {
			return http.StatusNotFound, errorResponse{transit.ErrRouteNotFound.Error()}, nil
		}
		return http.StatusNoContent, nil, nil
	})
}

func (s *Server) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.URL.Query().Has("route") {
		routeID, ok := queryInt(w, r, "route")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, nonNil(s.network.SchedulesFor(routeID)))
		return
	}
	writeJSON(w, http.StatusOK, s.network.Schedules())
}

func (s *Server) handleAddSchedule(w http.ResponseWriter, r *http.Request) {
	var req addScheduleRequest
	if !decode(w, r, &req) {
		return
	}
	s.mutate(w, r, "add schedule", func() (int, any, error) {
		sch, err := s.network.AddSchedule(req.RouteID, req.Time)
		return http.StatusCreated, sch, err
	})
}

func (s *Server) handleRemoveSchedule(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, "remove schedule", func() (int, any, error) {
		if !s.network.RemoveSchedule(pathID(r)) {
			return http.StatusNotFound, errorResponse{"schedule not found"}, nil
		}
		return http.StatusNoContent, nil, nil
	})
}

func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	var req connectRequest
	if !decode(w, r, &req) {
		return
	}
	s.mutate(w, r, "connect", func() (int, any, error) {
		if !s.network.Connect(req.From, req.To, req.Weight) {
			return http.StatusBadRequest, errorResponse{"stops must exist, differ, and the weight must be non-negative"}, nil
		}
		return http.StatusNoContent, nil, nil
	})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	from, ok := queryInt(w, r, "from")
	if !ok {
		return
	}
	to, ok := queryInt(w, r, "to")
	if !ok {
		return
	}
	kind := transit.Shortest
	if k := r.URL.Query().Get("kind"); k != "" {
		parsed, err := transit.ParsePlanKind(k)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		kind = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	plan, err := s.network.Plan(r.Context(), kind, from, to)
	if err != nil && !errors.Is(err, dfs.ErrSearchAborted) {
		writeError(w, statusOf(err), err.Error())
		return
	}
	if err != nil {
		s.log.Warn("plan cut short", zap.String("kind", string(kind)), zap.Error(err),
			zap.String("requestID", logging.GetRequestID(r.Context())))
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.network.RouteTable())
}

func (s *Server) handleTravelTimes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tbl, err := s.network.TravelTimes()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := travelTimesResponse{IDs: tbl.IDs(), Rows: make([][]int64, 0, tbl.Len())}
	for _, id := range resp.IDs {
		row, err := tbl.Row(id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.Rows = append(resp.Rows, row)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBackbone(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := s.network.Backbone()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleResilience(w http.ResponseWriter, r *http.Request) {
	from, ok := queryInt(w, r, "from")
	if !ok {
		return
	}
	to, ok := queryInt(w, r, "to")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.network.Resilience(r.Context(), from, to)
	if err != nil {
		writeError(w, statusOf(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
