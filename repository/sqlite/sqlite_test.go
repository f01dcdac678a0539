package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitnet/repository"
	"github.com/katalvlaran/transitnet/transit"
)

// newTestRepo creates an in-memory repository closed at test end.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestLatest_OrdersByTimeNotText(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	stamps := []time.Time{base.Add(900 * time.Millisecond), base.Add(950 * time.Millisecond)}
	repo.now = func() time.Time {
		next := stamps[0]
		stamps = stamps[1:]
		return next
	}

	_, err := repo.Save(ctx, transit.DefaultSnapshot(), "older")
	require.NoError(t, err)
	newer, err := repo.Save(ctx, transit.DefaultSnapshot(), "newer")
	require.NoError(t, err)

	_, info, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, info.ID)
	assert.True(t, info.CreatedAt.Equal(base.Add(950*time.Millisecond)))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].Label)
}

func TestSaveLatest_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, _, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	n, err := transit.NewDefault()
	require.NoError(t, err)
	require.NoError(t, n.SortStops(transit.SortByName))
	want := n.Snapshot()

	saved, err := repo.Save(ctx, want, "sorted")
	require.NoError(t, err)
	assert.Len(t, saved.ID, 36)
	assert.Equal(t, 19, saved.Stops)

	got, info, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, saved.ID, info.ID)
	assert.Equal(t, "sorted", info.Label)
	assert.Equal(t, 18, info.Edges)
	assert.True(t, saved.CreatedAt.Equal(info.CreatedAt))
}

func TestList_NewestFirst_AndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	first, err := repo.Save(ctx, transit.DefaultSnapshot(), "first")
	require.NoError(t, err)

	n, err := transit.NewDefault()
	require.NoError(t, err)
	require.True(t, n.RemoveStop(19))
	second, err := repo.Save(ctx, n.Snapshot(), "second")
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, 18, list[0].Stops)
	assert.Equal(t, first.ID, list[1].ID)

	got, err := repo.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, got.Stops, 19)

	require.NoError(t, repo.Delete(ctx, second.ID))
	assert.ErrorIs(t, repo.Delete(ctx, second.ID), repository.ErrNotFound)
	_, err = repo.Get(ctx, second.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// child rows went with the snapshot
	var count int
	require.NoError(t, repo.db.QueryRow(`SELECT COUNT(*) FROM stops WHERE snapshot_id = ?`, second.ID).Scan(&count))
	assert.Zero(t, count)

	_, info, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, info.ID)
}

func TestNew_FileDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "transit.db")

	repo, err := New(path)
	require.NoError(t, err)
	saved, err := repo.Save(ctx, transit.DefaultSnapshot(), "")
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	repo, err = New(path)
	require.NoError(t, err)
	defer repo.Close()
	got, info, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, info.ID)
	assert.Equal(t, transit.DefaultSnapshot(), got)
}
