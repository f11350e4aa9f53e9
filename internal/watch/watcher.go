package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"composectl/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change represents a modification of the watched file
type Change struct {
	Path      string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher reports changes to a single file using fsnotify. It watches the
// parent directory because editors commonly replace files by rename.
type Watcher struct {
	path string

	changes  chan Change
	stopChan chan struct{}
	done     chan struct{}

	fsWatcher *fsnotify.Watcher

	mutex   sync.RWMutex
	running bool
}

// New creates a watcher for path. The file itself need not exist yet, but
// its directory must.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %s: %w", path, err)
	}

	dir := filepath.Dir(abs)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}

	return &Watcher{
		path:      abs,
		changes:   make(chan Change, 10),
		fsWatcher: fsWatcher,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Changes returns the channel that delivers changes of the watched file.
// It is closed by Stop.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins processing fsnotify events.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running {
		return fmt.Errorf("watcher already running")
	}
	if w.fsWatcher == nil {
		return fmt.Errorf("watcher already stopped")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})

	go w.loop(w.stopChan, w.done)

	log.LogWithFields(log.F("file", w.path)).Debug("Watching settings file")
	return nil
}

func (w *Watcher) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Rename) {
				continue
			}

			change := Change{Path: w.path, Timestamp: time.Now(), Op: event.Op}
			// Non-blocking: a pending change already means "reload".
			select {
			case w.changes <- change:
			default:
				log.LogWithFields(log.F("file", event.Name)).Debug("Change already pending, dropped event")
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithError(err).Error("fsnotify watcher error")

		case <-stop:
			return
		}
	}
}

// Stop halts the watcher and closes the Changes channel.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.fsWatcher == nil {
		return
	}
	if w.running {
		close(w.stopChan)
		<-w.done
		w.running = false
	}

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithError(err).Error("Error closing fsnotify watcher")
	}
	w.fsWatcher = nil
	close(w.changes)
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Reloader is anything that can re-read its state from disk.
type Reloader interface {
	Reload() error
}

// Follow starts a watcher on path and calls r.Reload for every change until
// the returned stop function is called.
func Follow(path string, r Reloader) (stop func(), err error) {
	w, err := New(path)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return nil, err
	}

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for change := range w.Changes() {
			if err := r.Reload(); err != nil {
				continue // Reload already logged it
			}
			log.LogWithFields(log.F("file", change.Path), log.F("op", change.Op.String())).Info("Settings changed")
		}
	}()

	return func() {
		w.Stop()
		<-finished
	}, nil
}
