package corpus

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/clir-cli/internal/logger"
)

// debounceWindow coalesces the burst of write events editors emit when
// saving a file into a single rebuild.
const debounceWindow = 200 * time.Millisecond

// Watcher observes a corpus file and invokes a callback when it changes.
// It watches the parent directory instead of the file itself, which
// survives the delete-and-rename save pattern editors use.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	onWrite func()
}

// NewWatcher creates a watcher for the given corpus file. onWrite runs
// on the watcher goroutine after each debounced change.
func NewWatcher(path string, onWrite func()) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("watcher needs a corpus file path")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:    path,
		watcher: fsw,
		onWrite: onWrite,
	}, nil
}

// Run processes events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	debounce := time.NewTimer(debounceWindow)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	logger.Info("Watching %s for changes", w.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("corpus change detected: %s", event.Op)
			if pending {
				if !debounce.Stop() {
					<-debounce.C
				}
			}
			debounce.Reset(debounceWindow)
			pending = true

		case <-debounce.C:
			pending = false
			w.onWrite()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}
