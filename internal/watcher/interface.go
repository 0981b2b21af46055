package watcher

import "context"

// Watcher feeds newly created caption files in one directory to an
// EventHandler.
type Watcher interface {
	// Start blocks until ctx is cancelled or the underlying watcher fails.
	// On cancellation it waits for running handlers and returns ctx.Err().
	Start(ctx context.Context) error
	// Stop releases the directory watch. Start returns once it notices.
	Stop() error
}

// EventHandler processes one file. Returned errors are logged and the
// watcher keeps running.
type EventHandler func(ctx context.Context, path string) error
