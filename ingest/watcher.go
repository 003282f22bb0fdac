package ingest

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mcllerena/R2X/errors"
	"github.com/mcllerena/R2X/filemap"
	"github.com/mcllerena/R2X/pipeline"
)

// Watcher re-runs ingestion when files under the run folder change.
// Simulation tools rewrite their outputs in place; watching lets a long
// running translator pick up fresh data without restarting.
type Watcher struct {
	driver  *Driver
	fm      filemap.Map
	baseDir string
	steps   []pipeline.Step
	shared  map[string]any

	watcher        *fsnotify.Watcher
	callbacks      []ReingestCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	done           chan struct{}
}

// ReingestCallback receives the result of each re-ingestion pass. The error
// is the pass's failure, if any; the result may carry partial data.
type ReingestCallback func(*Result, error)

// NewWatcher creates a watcher over the run folder's search directories.
func NewWatcher(driver *Driver, fm filemap.Map, baseDir string,
	steps []pipeline.Step, shared map[string]any) (*Watcher, error) {

	if baseDir == "" {
		return nil, errors.New("watcher requires a base folder")
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	// fsnotify is non-recursive; watch the base folder plus whichever
	// conventional subfolders exist right now
	watched := 0
	for _, dir := range watchDirs(baseDir) {
		if err := fsWatcher.Add(dir); err != nil {
			driver.log.Debugw("Cannot watch directory", "dir", dir, "error", err)
			continue
		}
		watched++
	}
	if watched == 0 {
		fsWatcher.Close()
		return nil, errors.Newf("no watchable directories under %s", baseDir)
	}

	return &Watcher{
		driver:         driver,
		fm:             fm.Clone(),
		baseDir:        baseDir,
		steps:          steps,
		shared:         shared,
		watcher:        fsWatcher,
		debouncePeriod: 500 * time.Millisecond,
		done:           make(chan struct{}),
	}, nil
}

// OnReingest registers a callback invoked after every re-ingestion pass.
func (w *Watcher) OnReingest(callback ReingestCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start watches until ctx is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

// Stop closes the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	w.watcher.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReingest(ctx)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.driver.log.Warnw("File watcher error", "error", err)
		}
	}
}

// scheduleReingest debounces rapid change bursts (tools rewrite many files
// at once) into a single pass.
func (w *Watcher) scheduleReingest(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		result, err := w.driver.Ingest(ctx, w.fm, w.baseDir, w.steps, w.shared)

		w.mu.RLock()
		callbacks := make([]ReingestCallback, len(w.callbacks))
		copy(callbacks, w.callbacks)
		w.mu.RUnlock()

		for _, callback := range callbacks {
			callback(result, err)
		}
	})
}

func watchDirs(baseDir string) []string {
	dirs := []string{baseDir}
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return dirs
	}
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(baseDir, entry.Name()))
		}
	}
	return dirs
}
