// Package watch follows changes of the record file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/pomo/pkg/log"
)

// DefaultDebounce coalesces bursts of file events into one notification.
const DefaultDebounce = 100 * time.Millisecond

// Watcher calls onChange after the watched file has been written.
type Watcher struct {
	path     string
	delay    time.Duration
	onChange func()
	logger   log.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

// New creates a Watcher for path. The file does not need to exist yet.
func New(path string, onChange func(), logger log.Logger) *Watcher {
	if logger == nil {
		logger = log.Discard
	}
	return &Watcher{
		path:     path,
		delay:    DefaultDebounce,
		onChange: onChange,
		logger:   logger,
	}
}

// SetDebounce overrides the debounce delay.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.delay = d
}

// Run watches until ctx is done. The parent directory is watched so that
// files replaced by rename are still followed.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer w.stop()

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("record file changed", log.String("op", event.Op.String()))
			w.trigger()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", log.Err(err))
		}
	}
}

func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.delay, w.onChange)
}

func (w *Watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}
