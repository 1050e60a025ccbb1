// ABOUTME: Polling-based watcher for external edits to the mappings file
// ABOUTME: Monitors mtime at a configurable interval; no inotify dependency

package store

import (
	"os"
	"sync"
	"time"
)

// Watcher monitors the mappings file for changes by polling mtime. The
// proxy process writes the same file, so external edits must be noticed.
type Watcher struct {
	path     string
	onChange func()
	interval time.Duration
	mtime    time.Time
	existed  bool
	stopCh   chan struct{}
	kickCh   chan struct{}
	mu       sync.Mutex
	running  bool
	stopOnce sync.Once
}

// NewWatcher creates a watcher that calls onChange when the file changes,
// appears, or disappears.
func NewWatcher(path string, onChange func()) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		interval: 2 * time.Second,
		stopCh:   make(chan struct{}),
		kickCh:   make(chan struct{}, 1),
	}
}

// SetInterval overrides the default polling interval (2s). Takes effect
// immediately, also on a running watcher.
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	w.interval = d
	running := w.running
	w.mu.Unlock()

	if running {
		select {
		case w.kickCh <- struct{}{}:
		default: // a reset is already pending
		}
	}
}

// Start begins polling in a goroutine. Subsequent calls are no-ops.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.snapshotLocked()
	w.mu.Unlock()

	go w.loop()
}

// Stop halts the polling goroutine. Safe to call multiple times and
// concurrently.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.stopCh)
	})
}

// ForceCheck triggers an immediate check outside the polling cycle.
func (w *Watcher) ForceCheck() {
	w.mu.Lock()
	changed := w.checkLocked()
	if changed {
		w.snapshotLocked()
	}
	w.mu.Unlock()

	if changed {
		w.onChange()
	}
}

func (w *Watcher) loop() {
	ticker := time.NewTicker(w.currentInterval())
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-w.kickCh:
			ticker.Reset(w.currentInterval())
		case <-ticker.C:
			w.mu.Lock()
			changed := w.checkLocked()
			if changed {
				w.snapshotLocked()
			}
			w.mu.Unlock()

			if changed {
				w.onChange()
			}
		}
	}
}

func (w *Watcher) currentInterval() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.interval
}

// checkLocked compares the current mtime with the stored snapshot. Must
// hold mu.
func (w *Watcher) checkLocked() bool {
	info, err := os.Stat(w.path)
	if err != nil {
		return w.existed
	}
	return !w.existed || !info.ModTime().Equal(w.mtime)
}

// snapshotLocked records the current mtime. Must hold mu.
func (w *Watcher) snapshotLocked() {
	info, err := os.Stat(w.path)
	if err != nil {
		w.existed = false
		w.mtime = time.Time{}
		return
	}
	w.existed = true
	w.mtime = info.ModTime()
}
