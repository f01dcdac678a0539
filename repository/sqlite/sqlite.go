// Package sqlite keeps a history of network snapshots in a SQLite database
// using the pure Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/transitnet/repository"
	"github.com/katalvlaran/transitnet/transit"
)

// Repository implements repository.Store on SQLite. Each Save adds a
// snapshot; older snapshots stay available through Get and List.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// createdAtLayout is fixed width so that text order is time order.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

var _ repository.Store = (*Repository)(nil)

// New opens (or creates) the database at dbPath and applies the schema.
// ":memory:" gives a private in-memory database.
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection keeps :memory: databases alive and serialises writers
	db.SetMaxOpenConns(1)

	repo := &Repository{db: db, now: time.Now}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func dsn(path string) string {
	const pragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if path == ":memory:" {
		return path + "?" + pragmas
	}

	return path + "?" + pragmas + "&_pragma=journal_mode(WAL)"
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		label TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS stops (
		snapshot_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		id INTEGER NOT NULL,
		name TEXT NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		PRIMARY KEY (snapshot_id, id),
		FOREIGN KEY (snapshot_id) REFERENCES snapshots(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS routes (
		snapshot_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		id INTEGER NOT NULL,
		name TEXT NOT NULL,
		color_r INTEGER NOT NULL,
		color_g INTEGER NOT NULL,
		color_b INTEGER NOT NULL,
		PRIMARY KEY (snapshot_id, id),
		FOREIGN KEY (snapshot_id) REFERENCES snapshots(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS route_stops (
		snapshot_id TEXT NOT NULL,
		route_id INTEGER NOT NULL,
		seq INTEGER NOT NULL,
		stop_id INTEGER NOT NULL,
		PRIMARY KEY (snapshot_id, route_id, seq),
		FOREIGN KEY (snapshot_id, route_id) REFERENCES routes(snapshot_id, id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS schedules (
		snapshot_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		id INTEGER NOT NULL,
		route_id INTEGER NOT NULL,
		time TEXT NOT NULL,
		PRIMARY KEY (snapshot_id, id),
		FOREIGN KEY (snapshot_id) REFERENCES snapshots(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS edges (
		snapshot_id TEXT NOT NULL,
		from_id INTEGER NOT NULL,
		to_id INTEGER NOT NULL,
		weight INTEGER NOT NULL,
		PRIMARY KEY (snapshot_id, from_id, to_id),
		FOREIGN KEY (snapshot_id) REFERENCES snapshots(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_created ON snapshots(created_at);
	`

	_, err := r.db.Exec(schema)

	return err
}

// Save stores snap as a new snapshot with a fresh uuid.
func (r *Repository) Save(ctx context.Context, snap transit.Snapshot, label string) (repository.Info, error) {
	info := repository.Describe(snap)
	info.ID = uuid.NewString()
	info.Label = label
	info.CreatedAt = r.now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return repository.Info{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, label, created_at) VALUES (?, ?, ?)`,
		info.ID, info.Label, info.CreatedAt.Format(createdAtLayout),
	); err != nil {
		return repository.Info{}, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	for i, s := range snap.Stops {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO stops (snapshot_id, position, id, name, x, y) VALUES (?, ?, ?, ?, ?, ?)`,
			info.ID, i, s.ID, s.Name, s.X, s.Y,
		); err != nil {
			return repository.Info{}, fmt.Errorf("failed to insert stop %d: %w", s.ID, err)
		}
	}

	for i, rt := range snap.Routes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO routes (snapshot_id, position, id, name, color_r, color_g, color_b) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			info.ID, i, rt.ID, rt.Name, rt.Color.R, rt.Color.G, rt.Color.B,
		); err != nil {
			return repository.Info{}, fmt.Errorf("failed to insert route %d: %w", rt.ID, err)
		}
		for seq, stopID := range rt.Stops {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO route_stops (snapshot_id, route_id, seq, stop_id) VALUES (?, ?, ?, ?)`,
				info.ID, rt.ID, seq, stopID,
			); err != nil {
				return repository.Info{}, fmt.Errorf("failed to insert stop %d of route %d: %w", stopID, rt.ID, err)
			}
		}
	}

	for i, s := range snap.Schedules {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schedules (snapshot_id, position, id, route_id, time) VALUES (?, ?, ?, ?, ?)`,
			info.ID, i, s.ID, s.RouteID, s.Time,
		); err != nil {
			return repository.Info{}, fmt.Errorf("failed to insert schedule %d: %w", s.ID, err)
		}
	}

	for _, e := range snap.Edges {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO edges (snapshot_id, from_id, to_id, weight) VALUES (?, ?, ?, ?)`,
			info.ID, e.From, e.To, e.Weight,
		); err != nil {
			return repository.Info{}, fmt.Errorf("failed to insert edge %d-%d: %w", e.From, e.To, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return repository.Info{}, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return info, nil
}

// Latest returns the newest snapshot.
func (r *Repository) Latest(ctx context.Context) (transit.Snapshot, repository.Info, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM snapshots ORDER BY created_at DESC, rowid DESC LIMIT 1`,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return transit.Snapshot{}, repository.Info{}, repository.ErrNotFound
	}
	if err != nil {
		return transit.Snapshot{}, repository.Info{}, fmt.Errorf("failed to query latest snapshot: %w", err)
	}

	snap, err := r.Get(ctx, id)
	if err != nil {
		return transit.Snapshot{}, repository.Info{}, err
	}
	info, err := r.info(ctx, id)

	return snap, info, err
}

// Get loads the snapshot with the given id.
func (r *Repository) Get(ctx context.Context, id string) (transit.Snapshot, error) {
	if _, err := r.info(ctx, id); err != nil {
		return transit.Snapshot{}, err
	}

	var snap transit.Snapshot
	var err error
	if snap.Stops, err = r.loadStops(ctx, id); err != nil {
		return transit.Snapshot{}, err
	}
	if snap.Routes, err = r.loadRoutes(ctx, id); err != nil {
		return transit.Snapshot{}, err
	}
	if snap.Schedules, err = r.loadSchedules(ctx, id); err != nil {
		return transit.Snapshot{}, err
	}
	if snap.Edges, err = r.loadEdges(ctx, id); err != nil {
		return transit.Snapshot{}, err
	}

	return snap, nil
}

// List describes every snapshot, newest first.
func (r *Repository) List(ctx context.Context) ([]repository.Info, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.label, s.created_at,
			(SELECT COUNT(*) FROM stops WHERE snapshot_id = s.id),
			(SELECT COUNT(*) FROM routes WHERE snapshot_id = s.id),
			(SELECT COUNT(*) FROM schedules WHERE snapshot_id = s.id),
			(SELECT COUNT(*) FROM edges WHERE snapshot_id = s.id)
		FROM snapshots s
		ORDER BY s.created_at DESC, s.rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var out []repository.Info
	for rows.Next() {
		info, err := scanInfo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots: %w", err)
	}

	return out, nil
}

// Delete removes a snapshot and all its records.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", repository.ErrNotFound, id)
	}

	return nil
}

// Close closes the database.
func (r *Repository) Close() error {
	return r.db.Close()
}
