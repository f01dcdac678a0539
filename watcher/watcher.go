// Package watcher reports changes to a single data file.
//
// The file's directory is watched rather than the file itself so that
// editors and atomic writers that replace the file are still seen. Bursts of
// events are collapsed: the callback runs once the file has been quiet for
// the configured period.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultQuietPeriod is how long the file must stay unchanged before a change is reported.
const DefaultQuietPeriod = 200 * time.Millisecond

// FileWatcher watches one file.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	quiet   time.Duration
	log     *zap.Logger
}

// Option configures a FileWatcher.
type Option func(*FileWatcher)

// WithQuietPeriod overrides DefaultQuietPeriod. Non-positive values are ignored.
func WithQuietPeriod(d time.Duration) Option {
	return func(fw *FileWatcher) {
		if d > 0 {
			fw.quiet = d
		}
	}
}

// WithLogger sets the logger. Defaults to zap.NewNop.
func WithLogger(l *zap.Logger) Option {
	return func(fw *FileWatcher) {
		if l != nil {
			fw.log = l
		}
	}
}

// New starts watching the directory that holds path. The file itself need not exist yet.
func New(path string, opts ...Option) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	fw := &FileWatcher{watcher: w, path: abs, quiet: DefaultQuietPeriod, log: zap.NewNop()}
	for _, opt := range opts {
		opt(fw)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return fw, nil
}

// Path returns the absolute path being watched.
func (fw *FileWatcher) Path() string { return fw.path }

// Run calls onChange after every settled burst of writes, creates, renames
// or removals of the file. It blocks until ctx is done and closes the
// watcher on return.
func (fw *FileWatcher) Run(ctx context.Context, onChange func(path string)) error {
	defer fw.watcher.Close()

	timer := time.NewTimer(fw.quiet)
	timer.Stop()
	pending := 0

	fw.log.Info("watching data file", zap.String("path", fw.path))
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fw.path || event.Op == fsnotify.Chmod {
				continue
			}
			pending++
			timer.Reset(fw.quiet)

		case <-timer.C:
			fw.log.Debug("data file changed", zap.String("path", fw.path), zap.Int("events", pending))
			pending = 0
			onChange(fw.path)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Warn("watcher error", zap.Error(err))
		}
	}
}

// Close stops watching without waiting for Run.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
