// Package watch recompiles a scenario source whenever it changes on
// disk. The parent directory is watched rather than the file itself so
// editors that save through a rename keep triggering events.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the event bursts spreadsheet editors produce
// on save.
const DefaultDebounce = 500 * time.Millisecond

// Watcher triggers a callback when one scenario source changes.
type Watcher struct {
	source   string
	debounce time.Duration
	onChange func(path string) error

	mu       sync.Mutex
	pending  bool
	lastSeen time.Time
}

// New creates a watcher for the given source file. The callback runs on
// the watch goroutine after each debounced change. A non-positive
// debounce falls back to DefaultDebounce.
func New(source string, debounce time.Duration, onChange func(path string) error) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		source:   source,
		debounce: debounce,
		onChange: onChange,
	}
}

// Run watches until the context is canceled. Callback errors are
// reported through errf and do not stop the watch.
func (w *Watcher) Run(ctx context.Context, errf func(format string, args ...interface{})) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.source)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.matches(event) {
				continue
			}
			w.mu.Lock()
			w.pending = true
			w.lastSeen = time.Now()
			w.mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			if errf != nil {
				errf("watch error: %v", err)
			}

		case <-ticker.C:
			if !w.takePending() {
				continue
			}
			if w.onChange == nil {
				continue
			}
			if err := w.onChange(w.source); err != nil && errf != nil {
				errf("recompile failed: %v", err)
			}
		}
	}
}

func (w *Watcher) matches(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == filepath.Clean(w.source)
}

// takePending consumes the pending flag once the debounce window since
// the last event has elapsed.
func (w *Watcher) takePending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.pending || time.Since(w.lastSeen) < w.debounce {
		return false
	}
	w.pending = false
	return true
}
