package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/semaphore"

	"github.com/vicky469/audio-classifier/internal/logger"
)

// DefaultExtensions are the caption and transcript formats picked up.
var DefaultExtensions = []string{".vtt", ".srt", ".txt"}

type implWatcher struct {
	inputDir   string
	handler    EventHandler
	logger     logger.Logger
	watcher    *fsnotify.Watcher
	opts       Options
	extensions map[string]struct{}
	slots      *semaphore.Weighted
	wg         sync.WaitGroup
}

// Start monitors the input directory and hands new caption files to the
// handler until ctx is cancelled, then waits for running handlers.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.opts.MaxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(w.opts.Extensions, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !event.Has(fsnotify.Create) {
				continue
			}
			if !w.accepts(event.Name) {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New transcript detected: %s", event.Name)

			// Blocks while MaxConcurrent handlers are running.
			if err := w.slots.Acquire(ctx, 1); err != nil {
				continue
			}
			w.wg.Add(1)
			go w.handle(ctx, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// handle waits for the writer to settle, then runs the handler in its slot.
func (w *implWatcher) handle(ctx context.Context, path string) {
	defer w.wg.Done()
	defer w.slots.Release(1)

	select {
	case <-time.After(w.opts.SettleDelay):
	case <-ctx.Done():
		return
	}

	if err := w.handler(ctx, path); err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", path, err)
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// accepts skips hidden files, companion metadata and our own _clean output.
func (w *implWatcher) accepts(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := w.extensions[ext]; !ok {
		return false
	}
	return !strings.HasSuffix(strings.TrimSuffix(name, filepath.Ext(name)), "_clean")
}
