// Package watcher re-runs generation when the input document or the
// configuration file changes.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/logger"
)

// DefaultDebounce coalesces the bursts of events editors produce on save
const DefaultDebounce = 300 * time.Millisecond

// ChangeCallback is called once per debounced burst with the last changed path
type ChangeCallback func(path string) error

// FileWatcher watches a fixed set of files for changes.
// Parent directories are watched so files replaced by rename are still seen.
type FileWatcher struct {
	files          map[string]bool
	watcher        *fsnotify.Watcher
	callbacks      []ChangeCallback
	mu             sync.Mutex
	runMu          sync.Mutex // held while callbacks run
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	log            *zap.SugaredLogger
}

// New creates a watcher for paths. Empty paths are ignored.
func New(paths ...string) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	fw := &FileWatcher{
		files:          make(map[string]bool),
		watcher:        w,
		debouncePeriod: DefaultDebounce,
		log:            logger.Named("watch"),
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", p)
		}
		fw.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
		dirs[dir] = true
	}
	if len(fw.files) == 0 {
		w.Close()
		return nil, errors.New("no files to watch")
	}
	return fw, nil
}

// SetDebounce changes the debounce period
func (fw *FileWatcher) SetDebounce(d time.Duration) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.debouncePeriod = d
}

// OnChange registers a callback
func (fw *FileWatcher) OnChange(cb ChangeCallback) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.callbacks = append(fw.callbacks, cb)
}

// Run dispatches change events until ctx is done, then closes the watcher
func (fw *FileWatcher) Run(ctx context.Context) error {
	defer fw.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			fw.mu.Lock()
			if fw.debounceTimer != nil {
				fw.debounceTimer.Stop()
			}
			fw.mu.Unlock()
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !fw.files[event.Name] {
				continue
			}
			fw.log.Debugw("change detected",
				logger.FieldFile, event.Name,
				"op", event.Op.String(),
			)
			fw.schedule(event.Name)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Warnw("watch error", logger.FieldError, err)
		}
	}
}

// schedule debounces bursts of events into one callback round
func (fw *FileWatcher) schedule(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}
	fw.debounceTimer = time.AfterFunc(fw.debouncePeriod, func() {
		fw.fire(path)
	})
}

// fire runs the callbacks. A timer firing while an earlier round is still
// running waits for it.
func (fw *FileWatcher) fire(path string) {
	fw.runMu.Lock()
	defer fw.runMu.Unlock()

	fw.mu.Lock()
	callbacks := make([]ChangeCallback, len(fw.callbacks))
	copy(callbacks, fw.callbacks)
	fw.mu.Unlock()

	for _, cb := range callbacks {
		if err := cb(path); err != nil {
			// Keep watching; the next save may fix it
			fw.log.Warnw("change callback failed",
				logger.FieldFile, path,
				logger.FieldError, err,
			)
		}
	}
}
