package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/repository"
	"github.com/katalvlaran/transitnet/transit"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanInfo(row scanner) (repository.Info, error) {
	var (
		info    repository.Info
		created string
	)
	if err := row.Scan(&info.ID, &info.Label, &created,
		&info.Stops, &info.Routes, &info.Schedules, &info.Edges); err != nil {
		return repository.Info{}, err
	}
	// RFC3339Nano accepts both the fixed-width layout and trimmed fractions.
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return repository.Info{}, fmt.Errorf("failed to parse created_at %q: %w", created, err)
	}
	info.CreatedAt = t

	return info, nil
}

func (r *Repository) info(ctx context.Context, id string) (repository.Info, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT s.id, s.label, s.created_at,
			(SELECT COUNT(*) FROM stops WHERE snapshot_id = s.id),
			(SELECT COUNT(*) FROM routes WHERE snapshot_id = s.id),
			(SELECT COUNT(*) FROM schedules WHERE snapshot_id = s.id),
			(SELECT COUNT(*) FROM edges WHERE snapshot_id = s.id)
		FROM snapshots s WHERE s.id = ?
	`, id)
	info, err := scanInfo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.Info{}, fmt.Errorf("%w: %s", repository.ErrNotFound, id)
	}
	if err != nil {
		return repository.Info{}, fmt.Errorf("failed to query snapshot: %w", err)
	}

	return info, nil
}

func (r *Repository) loadStops(ctx context.Context, id string) ([]transit.Stop, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, x, y FROM stops WHERE snapshot_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query stops: %w", err)
	}
	defer rows.Close()

	out := []transit.Stop{}
	for rows.Next() {
		var s transit.Stop
		if err := rows.Scan(&s.ID, &s.Name, &s.X, &s.Y); err != nil {
			return nil, fmt.Errorf("failed to scan stop: %w", err)
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *Repository) loadRoutes(ctx context.Context, id string) ([]transit.Route, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, color_r, color_g, color_b FROM routes WHERE snapshot_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query routes: %w", err)
	}
	out := []transit.Route{}
	for rows.Next() {
		var rt transit.Route
		if err := rows.Scan(&rt.ID, &rt.Name, &rt.Color.R, &rt.Color.G, &rt.Color.B); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating routes: %w", err)
	}
	rows.Close()

	// the single connection must be free before the next query
	stopRows, err := r.db.QueryContext(ctx,
		`SELECT route_id, stop_id FROM route_stops WHERE snapshot_id = ? ORDER BY route_id, seq`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query route stops: %w", err)
	}
	defer stopRows.Close()

	byID := make(map[int][]int, len(out))
	for stopRows.Next() {
		var routeID, stopID int
		if err := stopRows.Scan(&routeID, &stopID); err != nil {
			return nil, fmt.Errorf("failed to scan route stop: %w", err)
		}
		byID[routeID] = append(byID[routeID], stopID)
	}
	for i := range out {
		out[i].Stops = byID[out[i].ID]
	}

	return out, stopRows.Err()
}

func (r *Repository) loadSchedules(ctx context.Context, id string) ([]transit.Schedule, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, route_id, time FROM schedules WHERE snapshot_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	out := []transit.Schedule{}
	for rows.Next() {
		var s transit.Schedule
		if err := rows.Scan(&s.ID, &s.RouteID, &s.Time); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *Repository) loadEdges(ctx context.Context, id string) ([]core.Edge, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT from_id, to_id, weight FROM edges WHERE snapshot_id = ? ORDER BY from_id, to_id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer rows.Close()

	out := []core.Edge{}
	for rows.Next() {
		var e core.Edge
		if err := rows.Scan(&e.From, &e.To, &e.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		out = append(out, e)
	}

	return out, rows.Err()
}
