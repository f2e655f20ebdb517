package api

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/amterp/colorbox/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// DocumentChangeType indicates what type of change occurred.
type DocumentChangeType string

const (
	DocumentCreated  DocumentChangeType = "created"
	DocumentModified DocumentChangeType = "modified"
	DocumentDeleted  DocumentChangeType = "deleted"
)

// debounceDelay coalesces the bursts of events editors produce on save.
const debounceDelay = 100 * time.Millisecond

// DocumentChange represents a change to the watched document.
type DocumentChange struct {
	Type DocumentChangeType `json:"type"`
	Path string             `json:"path"`
}

// DocumentWatcherSubscriber receives document change notifications.
type DocumentWatcherSubscriber interface {
	OnDocumentChange(change DocumentChange)
}

// DocumentWatcher watches a single document file and notifies subscribers.
//
// The parent directory is watched rather than the file itself so that
// atomic saves (write to a temp file, then rename) are still seen.
type DocumentWatcher struct {
	watcher     *fsnotify.Watcher
	path        string
	logger      *slog.Logger
	mu          sync.RWMutex
	subscribers []DocumentWatcherSubscriber
	timer       *time.Timer
	lastOp      fsnotify.Op
	debounceMu  sync.Mutex
	stopCh      chan struct{}
	stopped     bool // Once stopped, cannot restart
	running     bool
}

// NewDocumentWatcher creates a watcher for the document at path.
func NewDocumentWatcher(path string, logger *slog.Logger) (*DocumentWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &DocumentWatcher{
		watcher: watcher,
		path:    abs,
		logger:  logging.For(logger, "watcher"),
		stopCh:  make(chan struct{}),
	}, nil
}

// Subscribe adds a subscriber to receive change notifications.
func (dw *DocumentWatcher) Subscribe(sub DocumentWatcherSubscriber) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	dw.subscribers = append(dw.subscribers, sub)
}

// Unsubscribe removes a subscriber.
func (dw *DocumentWatcher) Unsubscribe(sub DocumentWatcherSubscriber) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	for i, s := range dw.subscribers {
		if s == sub {
			dw.subscribers = append(dw.subscribers[:i], dw.subscribers[i+1:]...)
			return
		}
	}
}

// Start begins watching the document.
func (dw *DocumentWatcher) Start() error {
	dw.mu.Lock()
	if dw.running {
		dw.mu.Unlock()
		return nil
	}
	if dw.stopped {
		dw.mu.Unlock()
		return fmt.Errorf("document watcher cannot be restarted after stop")
	}
	dw.running = true
	dw.mu.Unlock()

	if err := dw.watcher.Add(filepath.Dir(dw.path)); err != nil {
		return err
	}

	go dw.run()
	return nil
}

// Stop stops watching for changes.
func (dw *DocumentWatcher) Stop() error {
	dw.mu.Lock()
	if !dw.running || dw.stopped {
		dw.mu.Unlock()
		return nil
	}
	dw.running = false
	dw.stopped = true
	dw.mu.Unlock()

	dw.debounceMu.Lock()
	if dw.timer != nil {
		dw.timer.Stop()
		dw.timer = nil
	}
	dw.debounceMu.Unlock()

	close(dw.stopCh)
	return dw.watcher.Close()
}

// Path returns the absolute path of the watched document.
func (dw *DocumentWatcher) Path() string {
	return dw.path
}

func (dw *DocumentWatcher) run() {
	for {
		select {
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			dw.handleEvent(event)

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			dw.logger.Warn("watch error", "error", err)

		case <-dw.stopCh:
			return
		}
	}
}

func (dw *DocumentWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != dw.path {
		return
	}

	// Debounce: the last event of a burst decides the change type
	dw.debounceMu.Lock()
	defer dw.debounceMu.Unlock()
	dw.lastOp = event.Op
	if dw.timer != nil {
		dw.timer.Stop()
	}
	dw.timer = time.AfterFunc(debounceDelay, func() {
		dw.debounceMu.Lock()
		op := dw.lastOp
		dw.timer = nil
		dw.debounceMu.Unlock()
		dw.emitChange(op)
	})
}

func (dw *DocumentWatcher) emitChange(op fsnotify.Op) {
	// Check if watcher was stopped (debounce timer may fire after Stop)
	dw.mu.RLock()
	if dw.stopped {
		dw.mu.RUnlock()
		return
	}
	subs := make([]DocumentWatcherSubscriber, len(dw.subscribers))
	copy(subs, dw.subscribers)
	dw.mu.RUnlock()

	changeType, ok := classifyOp(op)
	if !ok {
		return
	}
	change := DocumentChange{Type: changeType, Path: dw.path}
	dw.logger.Debug("document changed", "type", change.Type)

	for _, sub := range subs {
		sub.OnDocumentChange(change)
	}
}

func classifyOp(op fsnotify.Op) (DocumentChangeType, bool) {
	switch {
	case op&fsnotify.Create != 0:
		return DocumentCreated, true
	case op&fsnotify.Write != 0:
		return DocumentModified, true
	case op&fsnotify.Remove != 0:
		return DocumentDeleted, true
	case op&fsnotify.Rename != 0:
		return DocumentDeleted, true // Rename source is effectively deleted
	default:
		return "", false
	}
}
