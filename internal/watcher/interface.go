package watcher

import "context"

// Watcher monitors an inbox directory for new transcript files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one detected transcript file.
type EventHandler func(ctx context.Context, path string) error
