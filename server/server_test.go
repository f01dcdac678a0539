package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/repository"
	"github.com/katalvlaran/transitnet/repository/sqlite"
	"github.com/katalvlaran/transitnet/server"
	"github.com/katalvlaran/transitnet/transit"
)

type fixture struct {
	t   *testing.T
	srv *server.Server
	h   http.Handler
}

func newFixture(t *testing.T, opts ...server.Option) *fixture {
	t.Helper()
	opts = append([]server.Option{server.WithLogger(zaptest.NewLogger(t))}, opts...)
	srv := server.New(defaultNetwork(t), opts...)

	return &fixture{t: t, srv: srv, h: srv.Handler()}
}

func defaultNetwork(t *testing.T) *transit.Network {
	t.Helper()
	n, err := transit.NewDefault()
	require.NoError(t, err)

	return n
}

// do sends a request and decodes a JSON response into out when out is non-nil.
func (f *fixture) do(method, target, body string, out any) int {
	f.t.Helper()
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	if out != nil {
		require.NoError(f.t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}

	return rec.Code
}

type apiError struct {
	Error string `json:"error"`
}

func TestStops(t *testing.T) {
	f := newFixture(t)

	var stops []transit.Stop
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/stops", "", &stops))
	assert.Len(t, stops, 19)

	var stop transit.Stop
	require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/stops", `{"name":"Zapote","x":5,"y":6}`, &stop))
	assert.Equal(t, transit.Stop{ID: 20, Name: "Zapote", X: 5, Y: 6}, stop)

	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/stops/20", "", &stop))
	assert.Equal(t, "Zapote", stop.Name)

	var e apiError
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/stops", `{"name":""}`, &e))
	assert.Contains(t, e.Error, "invalid name")
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/stops", `{"nom":"x"}`, &e))

	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/api/stops/20", "", nil))
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/api/stops/20", "", &e))
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/stops/20", "", &e))
	assert.Equal(t, http.StatusMethodNotAllowed, f.do(http.MethodPut, "/api/stops/1", "", &e))
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/depots", "", &e))
}

func TestSortStops(t *testing.T) {
	f := newFixture(t)

	var stops []transit.Stop
	require.Equal(t, http.StatusOK, f.do(http.MethodPost, "/api/stops/sort?by=name", "", &stops))
	assert.Equal(t, "Ambos Mares", stops[0].Name)

	var e apiError
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/stops/sort?by=colour", "", &e))
}

func TestRoutesAndSchedules(t *testing.T) {
	f := newFixture(t)

	var route transit.Route
	require.Equal(t, http.StatusCreated,
		f.do(http.MethodPost, "/api/routes", `{"name":"Express","color":"0;0;255","stops":[1,10],"weight":30}`, &route))
	assert.Equal(t, 4, route.ID)
	assert.Equal(t, transit.Color{B: 255}, route.Color)

	var e apiError
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/routes", `{"name":"x","stops":[1,99]}`, &e))
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/routes", `{"name":"x","color":"red","stops":[1,2]}`, &e))

	var sch transit.Schedule
	require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/schedules", `{"route_id":4,"time":"7:15"}`, &sch))
	assert.Equal(t, "07:15", sch.Time)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/schedules", `{"route_id":4,"time":"25:00"}`, &e))

	var schedules []transit.Schedule
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/schedules?route=4", "", &schedules))
	assert.Len(t, schedules, 1)
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/schedules?route=42", "", &schedules))
	assert.Empty(t, schedules)

	var rows []transit.RouteRow
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/table", "", &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"07:15"}, rows[3].Times)

	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/api/routes/4", "", nil))
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/api/schedules/3", "", &e))
}

func TestPlan(t *testing.T) {
	f := newFixture(t)

	var plan transit.Plan
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/plan?from=1&to=10", "", &plan))
	assert.Equal(t, transit.Shortest, plan.Kind)
	assert.Equal(t, int64(45), plan.Weight)

	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/plan?from=1&to=10&kind=longest", "", &plan))
	assert.Equal(t, int64(46), plan.Weight)

	// a direct edge makes the short way shorter
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodPost, "/api/edges", `{"from":1,"to":10,"weight":12}`, nil))
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/plan?from=1&to=10", "", &plan))
	assert.Equal(t, []int{1, 10}, plan.Stops)

	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/plan?from=1&to=11", "", &plan))
	assert.Empty(t, plan.Stops)

	var e apiError
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/plan?from=1&to=x", "", &e))
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/plan?from=1&to=2&kind=scenic", "", &e))
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/edges", `{"from":1,"to":1,"weight":2}`, &e))
}

func TestTravelTimes(t *testing.T) {
	f := newFixture(t)

	var resp struct {
		IDs  []int     `json:"ids"`
		Rows [][]int64 `json:"rows"`
	}
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/travel-times", "", &resp))
	require.Len(t, resp.IDs, 19)
	require.Len(t, resp.Rows, 19)
	assert.Equal(t, int64(45), resp.Rows[0][9])
	assert.Equal(t, int64(-1), resp.Rows[0][10])
}

func TestBackbone(t *testing.T) {
	f := newFixture(t)

	var resp struct {
		Edges      []core.Edge `json:"edges"`
		Weight     int64       `json:"weight"`
		Components int         `json:"components"`
	}
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/backbone", "", &resp))
	assert.Len(t, resp.Edges, 17)
	assert.Equal(t, int64(95), resp.Weight)
	assert.Equal(t, 2, resp.Components)
}

func TestResilience(t *testing.T) {
	f := newFixture(t)

	var resp transit.Resilience
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/resilience?from=5&to=9", "", &resp))
	assert.Equal(t, 2, resp.Paths)
	assert.Len(t, resp.Cut, 2)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/resilience?from=5&to=5", "", nil))
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/resilience?from=5&to=99", "", nil))
}

// brokenStore fails every save.
type brokenStore struct{}

func (brokenStore) Save(context.Context, transit.Snapshot, string) (repository.Info, error) {
	return repository.Info{}, errors.New("disk full")
}

func (brokenStore) Latest(context.Context) (transit.Snapshot, repository.Info, error) {
	return transit.Snapshot{}, repository.Info{}, repository.ErrNotFound
}

func (brokenStore) Close() error { return nil }

func TestFailedSaveRollsBack(t *testing.T) {
	f := newFixture(t, server.WithStore(brokenStore{}))

	var apiErr apiError
	require.Equal(t, http.StatusInternalServerError,
		f.do(http.MethodPost, "/api/stops", `{"name":"Zapote","x":5,"y":6}`, &apiErr))
	assert.Contains(t, apiErr.Error, "disk full")
	assert.Equal(t, http.StatusInternalServerError, f.do(http.MethodDelete, "/api/stops/1", "", nil))

	var stats transit.Stats
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/stats", "", &stats))
	assert.Equal(t, transit.Stats{Stops: 19, Routes: 3, Schedules: 2, Edges: 18}, stats)

	var stop transit.Stop
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/stops/1", "", &stop))
	assert.Equal(t, "Belén (Heredia)", stop.Name)
}

func TestMutationsArePersisted(t *testing.T) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	f := newFixture(t, server.WithStore(repo))
	require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/stops", `{"name":"Zapote","x":0,"y":0}`, &transit.Stop{}))
	var e apiError
	require.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/stops", `{"name":" "}`, &e))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1, "failed mutations are not saved")
	assert.Equal(t, "add stop", list[0].Label)
	assert.Equal(t, 20, list[0].Stops)
}

func TestReload(t *testing.T) {
	f := newFixture(t)

	changed, err := f.srv.Reload(transit.DefaultSnapshot())
	require.NoError(t, err)
	assert.False(t, changed)

	n := defaultNetwork(t)
	require.True(t, n.RemoveStop(19))
	changed, err = f.srv.Reload(n.Snapshot())
	require.NoError(t, err)
	assert.True(t, changed)

	var stats transit.Stats
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/stats", "", &stats))
	assert.Equal(t, 18, stats.Stops)

	_, err = f.srv.Reload(transit.Snapshot{Stops: []transit.Stop{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}})
	assert.Error(t, err)
}

var _ repository.Store = (*sqlite.Repository)(nil)
