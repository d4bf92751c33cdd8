package processor

import (
	"github.com/nguyentantai21042004/voice-notes/internal/assemblyai"
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/export"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/store"
	"github.com/nguyentantai21042004/voice-notes/internal/summarizer"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

// Deps are the collaborators of a Processor.
type Deps struct {
	Executor    executor.Executor
	Transcriber assemblyai.Client
	Store       store.Store
	Summarizer  summarizer.Summarizer
	Exporter    export.Exporter
}

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	transcriber assemblyai.Client
	store       store.Store
	summarizer  summarizer.Summarizer
	exporter    export.Exporter
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Deps, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		executor:    deps.Executor,
		transcriber: deps.Transcriber,
		store:       deps.Store,
		summarizer:  deps.Summarizer,
		exporter:    deps.Exporter,
		logger:      log.With("component", "processor"),
	}
}
