package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay batches the burst of events an editor produces on save.
const debounceDelay = 100 * time.Millisecond

// fileWatcher reports changes to a fixed set of files. It watches their
// directories so files replaced by rename are still seen.
type fileWatcher struct {
	logger  *slog.Logger
	fs      *fsnotify.Watcher
	watched map[string]string // absolute path -> path as given
}

func newFileWatcher(logger *slog.Logger, paths []string) (*fileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	w := &fileWatcher{logger: logger, fs: fsw, watched: make(map[string]string)}

	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == stdinName {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
		w.watched[abs] = p
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	if len(w.watched) == 0 {
		_ = fsw.Close()
		return nil, errors.New("watch: no files to watch")
	}
	return w, nil
}

// run calls onChange for each changed file until ctx is done.
func (w *fileWatcher) run(ctx context.Context, onChange func(path string)) error {
	w.logger.Info("watching", "files", len(w.watched))
	pending := make(map[string]bool)
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			path, ok := w.watched[filepath.Clean(ev.Name)]
			if !ok || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("file event", "file", path, "op", ev.Op.String())
			pending[path] = true
			fire = time.After(debounceDelay)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "err", err)
		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			clear(pending)
			slices.Sort(changed)
			for _, p := range changed {
				onChange(p)
			}
		}
	}
}

func (w *fileWatcher) close() error {
	return w.fs.Close()
}
