package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/transitnet/config"
	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/logging"
	"github.com/katalvlaran/transitnet/repository"
	"github.com/katalvlaran/transitnet/repository/file"
	"github.com/katalvlaran/transitnet/repository/sqlite"
	"github.com/katalvlaran/transitnet/transit"
)

// app is the state shared by commands: configuration, the opened store and
// the network loaded from it.
type app struct {
	cfg   *config.Config
	store repository.Store
	net   *transit.Network
	out   io.Writer
}

func newApp(ctx context.Context, cfg *config.Config, out io.Writer) (*app, error) {
	st, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, store: st, out: out}
	if err := a.load(ctx); err != nil {
		st.Close()
		return nil, err
	}

	return a, nil
}

func openStore(cfg *config.Config) (repository.Store, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		return sqlite.New(cfg.DB)
	default:
		return file.New(cfg.Data)
	}
}

// networkOptions translates configuration into Network options.
func (a *app) networkOptions() []transit.Option {
	gopts := []core.GraphOption{core.WithMaxVertices(a.cfg.Graph.MaxStops)}
	if a.cfg.Graph.ImplicitVertices {
		gopts = append(gopts, core.WithImplicitVertices())
	}

	return []transit.Option{
		transit.WithLogger(logging.L()),
		transit.WithGraphOptions(gopts...),
		transit.WithDefaultWeight(a.cfg.Graph.DefaultWeight),
		transit.WithSearchLimits(a.cfg.Search.MaxDepth, a.cfg.Search.MaxExpansions),
		transit.WithSearchTimeout(a.cfg.Search.Timeout),
	}
}

// load reads the latest snapshot. When seeding is enabled, a missing store or
// a network with no stops, routes and schedules gets the built-in data; a
// network holding any record is never reseeded.
func (a *app) load(ctx context.Context) error {
	snap, info, err := a.store.Latest(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		logging.Info("no stored network", "store", a.cfg.Store)
		a.net = transit.NewNetwork(a.networkOptions()...)
	case err != nil:
		return fmt.Errorf("load network: %w", err)
	default:
		n, err := transit.FromSnapshot(snap, a.networkOptions()...)
		if err != nil {
			return fmt.Errorf("load network %s: %w", info.ID, err)
		}
		a.net = n
		logging.Debug("network loaded", "id", info.ID, "stops", info.Stops, "routes", info.Routes)
	}

	if a.net.Empty() && a.cfg.Seed {
		if err := a.net.Seed(); err != nil {
			return fmt.Errorf("seed default network: %w", err)
		}
	}

	return nil
}

// replace swaps in a network built from snap with the configured options.
func (a *app) replace(snap transit.Snapshot) error {
	n, err := transit.FromSnapshot(snap, a.networkOptions()...)
	if err != nil {
		return err
	}
	a.net = n

	return nil
}

func (a *app) save(ctx context.Context, label string) error {
	info, err := a.store.Save(ctx, a.net.Snapshot(), label)
	if err != nil {
		return fmt.Errorf("save network: %w", err)
	}
	logging.Debug("network saved", "id", info.ID, "label", label)

	return nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		logging.Warn("close store", "error", err)
	}
}
