package settings

import (
	"os"
	"path/filepath"
	"time"
)

// FileWatcher polls run-file modification times and triggers a callback on
// change. It rescans the glob every tick, so run files added or deleted
// while the server is up are picked up too.
type FileWatcher struct {
	Glob      string
	Interval  time.Duration
	onChange  func(string) // called with path that changed
	stopCh    chan struct{}
	lastMTime map[string]time.Time
}

// NewRunsWatcher creates a watcher over the runs directory of baseDir.
func NewRunsWatcher(baseDir string, interval time.Duration, onChange func(string)) *FileWatcher {
	return &FileWatcher{
		Glob:      Paths{BaseDir: baseDir}.RunsGlob(),
		Interval:  interval,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		lastMTime: make(map[string]time.Time),
	}
}

// Start begins polling in a goroutine.
func (w *FileWatcher) Start() {
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		// prime cache
		w.scanAll(true)
		for {
			select {
			case <-ticker.C:
				w.scanAll(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher.
func (w *FileWatcher) Stop() {
	close(w.stopCh)
}

// scanAll checks mtimes and invokes onChange for files that changed since
// the last scan. New and deleted files count as changed unless this is the
// priming scan.
func (w *FileWatcher) scanAll(prime bool) {
	paths, err := filepath.Glob(w.Glob)
	if err != nil {
		return
	}
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			// file vanished between glob and stat; the stale-entry sweep
			// below reports it as deleted
			continue
		}
		seen[p] = true
		mt := fi.ModTime()
		last, ok := w.lastMTime[p]
		if !ok {
			w.lastMTime[p] = mt
			if !prime && w.onChange != nil {
				w.onChange(p)
			}
			continue
		}
		if mt.After(last) {
			w.lastMTime[p] = mt
			if !prime && w.onChange != nil {
				w.onChange(p)
			}
		}
	}
	for p := range w.lastMTime {
		if seen[p] {
			continue
		}
		delete(w.lastMTime, p)
		if !prime && w.onChange != nil {
			w.onChange(p)
		}
	}
}
