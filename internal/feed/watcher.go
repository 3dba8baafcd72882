package feed

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/venuepulse/footfall-tui/internal/logger"
)

// Watcher reports changes to the feed export file. Sensor vendors rewrite
// the export in place, so a debounced write/create notification replaces the
// polling loops the dashboard used to run.
type Watcher struct {
	mu            sync.Mutex
	filePath      string
	watcher       *fsnotify.Watcher
	onChange      func()
	stopChan      chan struct{}
	debounceTimer *time.Timer
}

// NewWatcher watches the feed file at path and invokes onChange after each
// (debounced) modification.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		filePath: path,
		watcher:  fsWatcher,
		onChange: onChange,
		stopChan: make(chan struct{}),
	}

	// Watch the directory to also catch atomic replace (rename+create).
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		if closeErr := fsWatcher.Close(); closeErr != nil {
			logger.Error("failed to close feed watcher", "error", closeErr)
		}
		return nil, err
	}

	go w.watchLoop()
	return w, nil
}

func (w *Watcher) watchLoop() {
	const debounceInterval = 250 * time.Millisecond

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.mu.Lock()
				if w.debounceTimer != nil {
					w.debounceTimer.Stop()
				}
				w.debounceTimer = time.AfterFunc(debounceInterval, w.onChange)
				w.mu.Unlock()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("feed watcher error", "error", err)

		case <-w.stopChan:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.stopChan)
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
