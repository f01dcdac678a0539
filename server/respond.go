package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/transitnet/flow"
	"github.com/katalvlaran/transitnet/transit"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, transit.ErrGraphFull):
		return http.StatusConflict
	case errors.Is(err, transit.ErrInvalidName),
		errors.Is(err, transit.ErrInvalidTime),
		errors.Is(err, transit.ErrInvalidWeight),
		errors.Is(err, transit.ErrEmptyRoute),
		errors.Is(err, transit.ErrUnknownPlanKind),
		errors.Is(err, transit.ErrUnknownSortKey),
		errors.Is(err, transit.ErrStopNotFound),
		errors.Is(err, transit.ErrRouteNotFound),
		errors.Is(err, flow.ErrSameEndpoints):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}

	return true
}

// pathID reads the {id} route variable; the route pattern guarantees digits.
func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	return id
}

// queryInt reads a required integer query parameter.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "query parameter "+name+" must be an integer")
		return 0, false
	}

	return v, true
}
