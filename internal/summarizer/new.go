package summarizer

import (
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/metrics"
)

type implSummarizer struct {
	stages   []Source
	fallback Source
	logger   logger.Logger
	metrics  metrics.Recorder
}

// New creates a Summarizer trying stages in order before the extractive fallback.
// Nil stages are ignored.
func New(log logger.Logger, rec metrics.Recorder, stages ...Source) Summarizer {
	if rec == nil {
		rec = metrics.Nop()
	}
	s := &implSummarizer{
		fallback: NewExtractive(),
		logger:   log.With("component", "summarizer"),
		metrics:  rec,
	}
	for _, st := range stages {
		if st != nil {
			s.stages = append(s.stages, st)
		}
	}
	return s
}
