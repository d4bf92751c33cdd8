package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/voice-notes/internal/app"
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/httpapi"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/processor"
	"github.com/nguyentantai21042004/voice-notes/internal/watcher"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup always runs.
func run(args []string) int {
	flags := flag.NewFlagSet("voice-notes", flag.ContinueOnError)
	configPath := flags.String("config", "config.yaml", "path to the YAML config")
	watch := flags.Bool("watch", false, "also process files dropped into paths.input")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		return 1
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := app.Build(cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize: %v", err)
		return 1
	}
	defer a.Close()

	srv := httpapi.New(httpapi.Options{
		Addr:          cfg.Server.Addr,
		MaxConcurrent: cfg.Performance.MaxConcurrent,
	}, httpapi.Deps{
		Transcriber: a.Transcriber,
		Store:       a.Store,
		Summarizer:  a.Summarizer,
		Gatherer:    a.Registry,
	}, log)

	var w watcher.Watcher
	if *watch {
		w, err = watcher.New(cfg.Paths.Input, processor.IsSupported, a.Processor.Process, log, watcher.Options{
			MaxConcurrent: cfg.Performance.MaxConcurrent,
			ScanExisting:  true,
		})
		if err != nil {
			log.Error(ctx, "Failed to create watcher: %v", err)
			return 1
		}
		defer w.Stop()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx)
	})
	if w != nil {
		g.Go(func() error {
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error(context.Background(), "Server stopped with error: %v", err)
		return 1
	}
	log.Info(context.Background(), "Server stopped")
	return 0
}
