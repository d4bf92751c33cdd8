package assemblyai

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/metrics"
)

const (
	DefaultBaseURL         = "https://api.assemblyai.com/v2"
	DefaultPollInterval    = 5 * time.Second
	DefaultMaxPollAttempts = 60
	defaultHTTPTimeout     = 60 * time.Second
	defaultExt             = ".webm"
)

// Config holds the static settings of a Client. APIKey is read once at
// construction and never changes.
type Config struct {
	BaseURL         string
	APIKey          string
	PollInterval    time.Duration
	MaxPollAttempts int
	HTTPTimeout     time.Duration
	SpeakerLabels   bool
	Summarization   bool
	TempDir         string
}

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Option customizes a Client.
type Option func(*implClient)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *implClient) { c.http = hc }
}

// WithSleeper replaces the wait between polls.
func WithSleeper(s Sleeper) Option {
	return func(c *implClient) { c.sleep = s }
}

// WithMetrics reports job outcomes and poll counts to rec.
func WithMetrics(rec metrics.Recorder) Option {
	return func(c *implClient) { c.metrics = rec }
}

type implClient struct {
	cfg     Config
	http    *http.Client
	sleep   Sleeper
	logger  logger.Logger
	metrics metrics.Recorder
}

// New creates a Client. Zero values in cfg fall back to the service defaults.
func New(cfg Config, log logger.Logger, opts ...Option) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.MaxPollAttempts <= 0 {
		cfg.MaxPollAttempts = DefaultMaxPollAttempts
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}

	c := &implClient{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
		sleep:   contextSleep,
		logger:  log.With("component", "assemblyai"),
		metrics: metrics.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// contextSleep waits for the given duration or until context is canceled.
func contextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
