package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/semaphore"

	"github.com/vicky469/audio-classifier/internal/logger"
)

// Options tune event handling. Zero values use the defaults noted per field.
type Options struct {
	// MaxConcurrent bounds handlers running at once, default 2.
	MaxConcurrent int
	// SettleDelay is waited after a CREATE event so the writer can finish, default 500ms.
	SettleDelay time.Duration
	// Extensions are the lower-case file extensions handled, default .vtt, .srt and .txt.
	Extensions []string
}

// New creates a new Watcher instance with concurrency control
func New(inputDir string, handler EventHandler, log logger.Logger, opts Options) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = 500 * time.Millisecond
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}

	exts := make(map[string]struct{}, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts[e] = struct{}{}
	}

	return &implWatcher{
		inputDir:   inputDir,
		handler:    handler,
		logger:     log,
		watcher:    watcher,
		opts:       opts,
		extensions: exts,
		slots:      semaphore.NewWeighted(int64(opts.MaxConcurrent)),
	}, nil
}
