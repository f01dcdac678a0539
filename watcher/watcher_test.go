package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/transitnet/watcher"
)

func TestFileWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "network.txt")
	other := filepath.Join(dir, "other.txt")

	fw, err := watcher.New(path, watcher.WithQuietPeriod(50*time.Millisecond), watcher.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	assert.Equal(t, path, fw.Path())

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan string, 10)
	done := make(chan error, 1)
	go func() { done <- fw.Run(ctx, func(p string) { changes <- p }) }()

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0o600))
	}

	select {
	case p := <-changes:
		assert.Equal(t, path, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	// the burst was reported once
	select {
	case p := <-changes:
		t.Fatalf("unexpected second change for %s", p)
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := watcher.New(filepath.Join(t.TempDir(), "nope", "network.txt"))
	assert.Error(t, err)
}
