// Package watch re-runs an action whenever a single source file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
)

// Watcher monitors one file for changes and triggers a callback. The
// parent directory is watched rather than the file itself because many
// editors save by renaming a temp file over the original, which removes
// the original watch.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	callback  func(path string)
	mu        sync.Mutex
	pending   time.Time
	dirty     bool
}

// NewWatcher creates a watcher for the file at path.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		path:      abs,
		debounce:  debounce,
	}, nil
}

// SetCallback sets the function to call when the file changes.
func (w *Watcher) SetCallback(cb func(path string)) {
	w.callback = cb
}

// Start begins watching for changes. It blocks until ctx is canceled or
// the watcher is stopped.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	color.Cyan("Watching %s...", w.path)
	color.Cyan("Press Ctrl+C to stop")
	fmt.Println()

	go w.processDebounced(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			color.Red("Watch error: %v", err)
		}
	}
}

// handleEvent processes a filesystem event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	// The directory watch reports every sibling; keep only our file.
	if filepath.Clean(event.Name) != w.path {
		return
	}

	w.mu.Lock()
	w.pending = time.Now()
	w.dirty = true
	w.mu.Unlock()
}

// processDebounced fires the callback once the file has been stable for
// the debounce period.
func (w *Watcher) processDebounced(ctx context.Context) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.mu.Lock()
			ready := w.dirty && time.Since(w.pending) >= w.debounce
			if ready {
				w.dirty = false
			}
			w.mu.Unlock()

			if ready && w.callback != nil {
				w.runCallback()
			}
		}
	}
}

// runCallback executes the callback for the changed file.
func (w *Watcher) runCallback() {
	color.Yellow("\nFile changed: %s", filepath.Base(w.path))
	fmt.Println(strings.Repeat("-", 40))

	w.callback(w.path)

	fmt.Println()
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}
