package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/semaphore"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

type implWatcher struct {
	inputDir string
	filter   Filter
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	opts     Options
	slots    *semaphore.Weighted
	wg       sync.WaitGroup
}

// Start begins monitoring the input directory and blocks until ctx is done.
// In-flight handlers are waited for before it returns.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.opts.MaxConcurrent, w.inputDir)
	defer w.wg.Wait()

	if w.opts.ScanExisting {
		if err := w.scan(ctx); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !w.filter(event.Name) {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New file detected: %s", event.Name)
			if err := w.settle(ctx); err != nil {
				return err
			}
			if err := w.dispatch(ctx, event.Name); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// scan dispatches supported files that were dropped while nothing was watching.
func (w *implWatcher) scan(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return fmt.Errorf("scan input dir: %w", err)
	}
	for _, e := range entries {
		path := filepath.Join(w.inputDir, e.Name())
		if e.IsDir() || !w.filter(path) {
			continue
		}
		w.logger.Info(ctx, "Found pending file: %s", path)
		if err := w.dispatch(ctx, path); err != nil {
			return err
		}
	}
	return nil
}

// dispatch blocks until a slot is free, then handles the file in a goroutine.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	if err := w.slots.Acquire(ctx, 1); err != nil {
		return err
	}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.slots.Release(1)

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) settle(ctx context.Context) error {
	if w.opts.SettleDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(w.opts.SettleDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
