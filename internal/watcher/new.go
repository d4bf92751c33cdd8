package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/semaphore"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

const defaultSettleDelay = 500 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	MaxConcurrent int
	// SettleDelay is waited after a create event so the file is fully written.
	SettleDelay time.Duration
	// ScanExisting hands files already in the folder to the handler on Start.
	ScanExisting bool
}

// New creates a new Watcher instance with concurrency control
func New(inputDir string, filter Filter, handler EventHandler, log logger.Logger, opts Options) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// Default to 2 concurrent if not specified
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.SettleDelay < 0 {
		opts.SettleDelay = 0
	} else if opts.SettleDelay == 0 {
		opts.SettleDelay = defaultSettleDelay
	}

	return &implWatcher{
		inputDir: inputDir,
		filter:   filter,
		handler:  handler,
		logger:   log.With("component", "watcher"),
		watcher:  watcher,
		opts:     opts,
		slots:    semaphore.NewWeighted(int64(opts.MaxConcurrent)),
	}, nil
}
