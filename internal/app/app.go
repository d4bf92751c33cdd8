// Package app wires the configured components shared by the binaries.
package app

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nguyentantai21042004/voice-notes/internal/assemblyai"
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/export"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/metrics"
	"github.com/nguyentantai21042004/voice-notes/internal/processor"
	"github.com/nguyentantai21042004/voice-notes/internal/store"
	"github.com/nguyentantai21042004/voice-notes/internal/summarizer"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

// App holds the long-lived components built from a Config.
type App struct {
	Config      *config.Config
	Logger      logger.Logger
	Registry    *prometheus.Registry
	Transcriber assemblyai.Client
	Store       store.Store
	Summarizer  summarizer.Summarizer
	Processor   processor.Processor
}

// Build creates every component. Close releases the database.
func Build(cfg *config.Config, log logger.Logger) (*App, error) {
	if err := EnsureDirectories(cfg); err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.New(reg)

	client := assemblyai.New(assemblyai.Config{
		BaseURL:         cfg.AssemblyAI.BaseURL,
		APIKey:          cfg.AssemblyAI.APIKey,
		PollInterval:    cfg.AssemblyAI.PollInterval,
		MaxPollAttempts: cfg.AssemblyAI.MaxPollAttempts,
		HTTPTimeout:     cfg.AssemblyAI.HTTPTimeout,
		SpeakerLabels:   *cfg.AssemblyAI.SpeakerLabels,
		Summarization:   cfg.AssemblyAI.Summarization,
		TempDir:         cfg.Paths.Temp,
	}, log, assemblyai.WithMetrics(rec))

	st, err := store.Open(cfg.Database.Path, log)
	if err != nil {
		return nil, err
	}

	sum := summarizer.New(log, rec,
		summarizer.NewRemote(client),
		summarizer.NewGemini(cfg.Gemini.APIKeys, cfg.Gemini.Model),
	)

	proc := processor.New(cfg, processor.Deps{
		Executor:    executor.New(),
		Transcriber: client,
		Store:       st,
		Summarizer:  sum,
		Exporter:    export.New(log),
	}, log)

	return &App{
		Config:      cfg,
		Logger:      log,
		Registry:    reg,
		Transcriber: client,
		Store:       st,
		Summarizer:  sum,
		Processor:   proc,
	}, nil
}

// Close releases resources held by the App.
func (a *App) Close() error {
	return a.Store.Close()
}

// EnsureDirectories creates required directories if they don't exist
func EnsureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Processing,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
