package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

type collector struct {
	mu    sync.Mutex
	paths []string
	done  chan string
}

func newCollector() *collector {
	return &collector{done: make(chan string, 16)}
}

func (c *collector) handle(_ context.Context, path string) error {
	c.mu.Lock()
	c.paths = append(c.paths, path)
	c.mu.Unlock()
	c.done <- path
	return nil
}

func onlyMP3(path string) bool {
	return strings.HasSuffix(path, ".mp3")
}

func waitFor(t *testing.T, c *collector, want string) {
	t.Helper()
	select {
	case got := <-c.done:
		if filepath.Base(got) != want {
			t.Errorf("handled %s, want %s", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", want)
	}
}

func TestWatcherHandlesNewFiles(t *testing.T) {
	dir := t.TempDir()
	c := newCollector()

	w, err := New(dir, onlyMP3, c.handle, logger.Nop(), Options{SettleDelay: -1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "memo.mp3"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, c, "memo.mp3")

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.paths) != 1 {
		t.Errorf("handled %v, want only memo.mp3", c.paths)
	}
}

func TestWatcherScansExistingFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "old.mp3"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	c := newCollector()

	w, err := New(dir, onlyMP3, c.handle, logger.Nop(), Options{ScanExisting: true, SettleDelay: -1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	waitFor(t, c, "old.mp3")
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), onlyMP3, newCollector().handle, logger.Nop(), Options{})
	if err == nil {
		t.Fatal("New() should fail for a missing directory")
	}
}
