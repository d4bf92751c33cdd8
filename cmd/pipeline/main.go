package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/nguyentantai21042004/voice-notes/internal/app"
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/processor"
	"github.com/nguyentantai21042004/voice-notes/internal/watcher"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup always runs.
func run(args []string) int {
	flags := flag.NewFlagSet("voice-notes", flag.ContinueOnError)
	configPath := flags.String("config", "config.yaml", "path to the YAML config")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		return 1
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Initialize logger
	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Voice Notes Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if !executor.Available(cfg.FFmpeg.BinaryPath) {
		log.Warn(ctx, "%s not found on PATH, video inputs will fail", cfg.FFmpeg.BinaryPath)
	}

	a, err := app.Build(cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize: %v", err)
		return 1
	}
	defer a.Close()

	w, err := watcher.New(cfg.Paths.Input, processor.IsSupported, a.Processor.Process, log, watcher.Options{
		MaxConcurrent: cfg.Performance.MaxConcurrent,
		ScanExisting:  true,
	})
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return 1
	}
	defer w.Stop()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Supported formats: %s", strings.Join(processor.SupportedFormats(), ", "))
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(context.Background(), "Pipeline stopped")
	return 0
}
