// Package file stores a single network snapshot in a data file.
// The format follows the file extension (see codec.ForPath).
package file

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/transitnet/codec"
	"github.com/katalvlaran/transitnet/repository"
	"github.com/katalvlaran/transitnet/transit"
)

// Store keeps the latest snapshot at Path. Every Save overwrites it.
type Store struct {
	Path string
}

var _ repository.Store = (*Store)(nil)

// New checks that path has a known format and returns a Store for it.
func New(path string) (*Store, error) {
	if _, err := codec.ForPath(path); err != nil {
		return nil, err
	}

	return &Store{Path: path}, nil
}

// Save writes snap to the data file. The label is not stored.
func (s *Store) Save(_ context.Context, snap transit.Snapshot, label string) (repository.Info, error) {
	if err := codec.SaveFile(s.Path, snap); err != nil {
		return repository.Info{}, err
	}
	info, err := s.stat(snap)
	info.Label = label

	return info, err
}

// Latest reads the data file. A missing file yields repository.ErrNotFound.
func (s *Store) Latest(_ context.Context) (transit.Snapshot, repository.Info, error) {
	snap, err := codec.LoadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return transit.Snapshot{}, repository.Info{}, fmt.Errorf("%w: %w", repository.ErrNotFound, err)
	}
	if err != nil {
		return transit.Snapshot{}, repository.Info{}, err
	}
	info, err := s.stat(snap)

	return snap, info, err
}

func (s *Store) stat(snap transit.Snapshot) (repository.Info, error) {
	info := repository.Describe(snap)
	info.ID = s.Path
	fi, err := os.Stat(s.Path)
	if err != nil {
		return info, fmt.Errorf("file: stat: %w", err)
	}
	info.CreatedAt = fi.ModTime().UTC()

	return info, nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }
