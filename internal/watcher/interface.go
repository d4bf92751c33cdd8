package watcher

import "context"

// Watcher monitors a folder and hands new files to an EventHandler
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles file events
type EventHandler func(ctx context.Context, filePath string) error

// Filter reports whether a file should be handled
type Filter func(filePath string) bool
