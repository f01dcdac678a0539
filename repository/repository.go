package repository

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/transitnet/transit"
)

// ErrNotFound indicates that no snapshot exists for the request.
var ErrNotFound = errors.New("repository: snapshot not found")

// Info describes one stored snapshot.
type Info struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Label     string    `json:"label,omitempty"`
	Stops     int       `json:"stops"`
	Routes    int       `json:"routes"`
	Schedules int       `json:"schedules"`
	Edges     int       `json:"edges"`
}

// Store persists network snapshots.
type Store interface {
	// Save stores snap and returns its description.
	Save(ctx context.Context, snap transit.Snapshot, label string) (Info, error)

	// Latest returns the most recently saved snapshot or ErrNotFound.
	Latest(ctx context.Context) (transit.Snapshot, Info, error)

	// Close releases resources.
	Close() error
}

// Describe fills the counts of an Info from snap.
func Describe(snap transit.Snapshot) Info {
	return Info{
		Stops:     len(snap.Stops),
		Routes:    len(snap.Routes),
		Schedules: len(snap.Schedules),
		Edges:     len(snap.Edges),
	}
}
