package summarizer

import (
	"context"
	"errors"
	"strings"
)

// Summarize tries each stage in order and falls through to the extractive
// summary. Stage failures are logged, never returned.
func (s *implSummarizer) Summarize(ctx context.Context, req Request) Summary {
	for _, stage := range s.stages {
		text, err := stage.Summarize(ctx, req)
		switch {
		case errors.Is(err, ErrSkipped):
			continue
		case err != nil:
			s.logger.Warn(ctx, "%s summary not available: %v", stage.Name(), err)
			continue
		case strings.TrimSpace(text) == "":
			s.logger.Debug(ctx, "%s summary was empty", stage.Name())
			continue
		}
		return s.done(ctx, Summary{Text: text, Source: stage.Name()})
	}

	text, _ := s.fallback.Summarize(ctx, req)
	return s.done(ctx, Summary{Text: text, Source: s.fallback.Name()})
}

func (s *implSummarizer) done(ctx context.Context, sum Summary) Summary {
	s.metrics.SummaryProduced(sum.Source)
	s.logger.Info(ctx, "Summary produced by %s (%d chars)", sum.Source, len(sum.Text))
	return sum
}
