package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

// Watcher reports modifications of a single file.
type Watcher interface {
	// WatchFile calls onChange after every write to, or re-creation of,
	// path until ctx is done.
	WatchFile(ctx context.Context, path m.Path, onChange func()) error
}

// FSNotifyWatcher implements Watcher with fsnotify. It watches the parent
// directory so editors that save by renaming a new file into place are
// still noticed.
type FSNotifyWatcher struct{}

// NewFSNotifyWatcher constructs an FSNotifyWatcher.
func NewFSNotifyWatcher() *FSNotifyWatcher {
	return &FSNotifyWatcher{}
}

// WatchFile implements Watcher.
func (w *FSNotifyWatcher) WatchFile(ctx context.Context, path m.Path, onChange func()) error {
	target, err := filepath.Abs(string(path))
	if err != nil {
		return fmt.Errorf("resolve watch path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Error("Failed to close watcher", "path", target, "error", err)
		}
	}()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	slog.Debug("Watching file", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			slog.Debug("File changed", "path", event.Name, "op", event.Op.String())
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Error("Watcher error", "path", target, "error", err)
		}
	}
}
