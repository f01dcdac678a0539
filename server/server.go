// Package server exposes a transit.Network over an HTTP/JSON API.
//
// All handlers share one Network guarded by a mutex; the engine itself is
// single-caller. When a repository.Store is configured, every successful
// mutation is persisted before the response is written.
package server

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/katalvlaran/transitnet/logging"
	"github.com/katalvlaran/transitnet/repository"
	"github.com/katalvlaran/transitnet/transit"
)

// Server serves the API.
type Server struct {
	mu      sync.Mutex
	network *transit.Network
	store   repository.Store
	netOpts []transit.Option
	router  *mux.Router
	log     *zap.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithStore persists the network after every mutation.
func WithStore(st repository.Store) Option {
	return func(s *Server) { s.store = st }
}

// WithLogger sets the logger. Defaults to logging.L().
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithNetworkOptions are applied when Reload rebuilds the network.
func WithNetworkOptions(opts ...transit.Option) Option {
	return func(s *Server) { s.netOpts = append(s.netOpts, opts...) }
}

// New returns a server for n.
func New(n *transit.Network, opts ...Option) *Server {
	s := &Server{
		network: n,
		router:  mux.NewRouter(),
		log:     logging.L(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	api.HandleFunc("/network", s.handleNetwork).Methods(http.MethodGet)

	api.HandleFunc("/stops", s.handleListStops).Methods(http.MethodGet)
	api.HandleFunc("/stops", s.handleAddStop).Methods(http.MethodPost)
	api.HandleFunc("/stops/sort", s.handleSortStops).Methods(http.MethodPost)
	api.HandleFunc("/stops/{id:[0-9]+}", s.handleGetStop).Methods(http.MethodGet)
	api.HandleFunc("/stops/{id:[0-9]+}", s.handleRemoveStop).Methods(http.MethodDelete)

	api.HandleFunc("/routes", s.handleListRoutes).Methods(http.MethodGet)
	api.HandleFunc("/routes", s.handleAddRoute).Methods(http.MethodPost)
	api.HandleFunc("/routes/{id:[0-9]+}", s.handleRemoveRoute).Methods(http.MethodDelete)

	api.HandleFunc("/schedules", s.handleListSchedules).Methods(http.MethodGet)
	api.HandleFunc("/schedules", s.handleAddSchedule).Methods(http.MethodPost)
	api.HandleFunc("/schedules/{id:[0-9]+}", s.handleRemoveSchedule).Methods(http.MethodDelete)

	api.HandleFunc("/edges", s.handleConnect).Methods(http.MethodPost)

	api.HandleFunc("/plan", s.handlePlan).Methods(http.MethodGet)
	api.HandleFunc("/table", s.handleTable).Methods(http.MethodGet)
	api.HandleFunc("/travel-times", s.handleTravelTimes).Methods(http.MethodGet)
	api.HandleFunc("/backbone", s.handleBackbone).Methods(http.MethodGet)
	api.HandleFunc("/resilience", s.handleResilience).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}

// Handler returns the router wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return logging.RequestIDMiddleware(s.router)
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("listening", zap.String("addr", addr))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}

// Reload replaces the network with one rebuilt from snap. A snapshot equal
// to the current state is ignored, which filters out the server's own saves.
// It reports whether the network changed.
func (s *Server) Reload(snap transit.Snapshot) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reflect.DeepEqual(snap, s.network.Snapshot()) {
		return false, nil
	}
	n, err := transit.FromSnapshot(snap, s.netOpts...)
	if err != nil {
		return false, err
	}
	s.network = n
	s.log.Info("network reloaded", zap.Int("stops", len(snap.Stops)), zap.Int("routes", len(snap.Routes)))

	return true, nil
}

// persist saves the network. Callers hold s.mu.
func (s *Server) persist(ctx context.Context, label string) error {
	if s.store == nil {
		return nil
	}
	_, err := s.store.Save(ctx, s.network.Snapshot(), label)

	return err
}
