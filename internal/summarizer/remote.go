package summarizer

import "context"

// RemoteFetcher reads the summary the transcription service attached to a job.
type RemoteFetcher interface {
	FetchSummary(ctx context.Context, externalID string) (string, error)
}

type remoteSource struct {
	fetcher RemoteFetcher
}

// NewRemote returns a Source backed by the transcription service. Requests
// without an external id are skipped.
func NewRemote(f RemoteFetcher) Source {
	if f == nil {
		return nil
	}
	return &remoteSource{fetcher: f}
}

func (r *remoteSource) Name() string { return SourceRemote }

func (r *remoteSource) Summarize(ctx context.Context, req Request) (string, error) {
	if req.ExternalID == "" {
		return "", ErrSkipped
	}
	return r.fetcher.FetchSummary(ctx, req.ExternalID)
}
