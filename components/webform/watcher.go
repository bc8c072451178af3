package webform

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherConfig configures the configuration-file watcher.
type WatcherConfig struct {
	// Path is the configuration file to watch.
	Path string

	// DebounceDelay is how long to wait for more changes before invalidating.
	// Editors often emit several events per save.
	DebounceDelay time.Duration

	// Logger for logging events.
	Logger *slog.Logger
}

// Watcher invalidates a component's cached page when the configuration file
// changes on disk, so long-running servers pick up edits without a restart.
type Watcher struct {
	config    WatcherConfig
	watcher   *fsnotify.Watcher
	logger    *slog.Logger
	component *Component

	pendingMu sync.Mutex
	pending   bool
}

// NewWatcher creates a watcher bound to the component whose cache it should
// invalidate.
func NewWatcher(component *Component, config WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.DebounceDelay == 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}

	return &Watcher{
		config:    config,
		watcher:   fsw,
		logger:    logger,
		component: component,
	}, nil
}

// Start begins watching the configuration file. It watches the parent
// directory because editors replace files on save, which drops a watch placed
// on the file itself.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.config.Path)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("configuration watcher started", "path", w.config.Path)
	return nil
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	target := filepath.Clean(w.config.Path)
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}

			w.pendingMu.Lock()
			if !w.pending {
				w.pending = true
				timer = time.AfterFunc(w.config.DebounceDelay, func() {
					w.pendingMu.Lock()
					w.pending = false
					w.pendingMu.Unlock()

					w.component.InvalidateCache()
					w.logger.Info("configuration changed, cache invalidated", "path", w.config.Path)
				})
			}
			w.pendingMu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("configuration watcher error", "error", err)
		}
	}
}
