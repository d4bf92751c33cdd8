package summarizer

import (
	"context"
	"errors"
)

// Source names reported with every Summary.
const (
	SourceRemote     = "remote"
	SourceGemini     = "gemini"
	SourceExtractive = "extractive"
)

// ErrSkipped is returned by a Source that has nothing to offer for a request.
var ErrSkipped = errors.New("summarizer: source skipped")

// Request describes the text to summarize. ExternalID is the remote job id,
// when the text came from one.
type Request struct {
	ExternalID string
	Text       string
}

// Summary is the produced text and the name of the Source that produced it.
type Summary struct {
	Text   string
	Source string
}

// Source is one stage of the summary pipeline.
type Source interface {
	Name() string
	Summarize(ctx context.Context, req Request) (string, error)
}

// Summarizer produces a summary for any text. It never fails: when every
// configured Source is skipped or errors, the local extractive summary is used.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) Summary
}
