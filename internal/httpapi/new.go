package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/semaphore"

	"github.com/nguyentantai21042004/voice-notes/internal/assemblyai"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/store"
	"github.com/nguyentantai21042004/voice-notes/internal/summarizer"
)

const defaultMaxUploadBytes = 100 << 20

// Options configures the HTTP layer.
type Options struct {
	Addr          string
	MaxConcurrent int
	// MaxUploadBytes caps the multipart body of POST /transcriptions.
	MaxUploadBytes int64
}

// Deps are the collaborators behind the handlers.
type Deps struct {
	Transcriber assemblyai.Client
	Store       store.Store
	Summarizer  summarizer.Summarizer
	// Gatherer backs GET /metrics. The route is not registered when nil.
	Gatherer prometheus.Gatherer
}

type implServer struct {
	opts        Options
	transcriber assemblyai.Client
	store       store.Store
	summarizer  summarizer.Summarizer
	logger      logger.Logger
	slots       *semaphore.Weighted
	engine      *gin.Engine
}

// New builds the gin engine and registers every route.
func New(opts Options, deps Deps, log logger.Logger) Server {
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUploadBytes
	}

	s := &implServer{
		opts:        opts,
		transcriber: deps.Transcriber,
		store:       deps.Store,
		summarizer:  deps.Summarizer,
		logger:      log.With("component", "httpapi"),
		slots:       semaphore.NewWeighted(int64(opts.MaxConcurrent)),
		engine:      gin.New(),
	}
	s.engine.MaxMultipartMemory = 32 << 20
	s.routes(deps.Gatherer)
	return s
}

func (s *implServer) Handler() http.Handler {
	return s.engine
}
