// Package assemblyai turns AssemblyAI's asynchronous upload/submit/poll API
// into a single blocking Transcribe call.
package assemblyai

import (
	"context"

	"github.com/nguyentantai21042004/voice-notes/internal/transcript"
)

// Client talks to the AssemblyAI v2 REST API.
type Client interface {
	// Transcribe uploads audio, submits a job and blocks until it reaches a
	// terminal state or the poll attempt ceiling. extHint only names the
	// local temp file and is never sent to the service.
	Transcribe(ctx context.Context, audio []byte, extHint string) (*transcript.Result, error)

	// FetchSummary returns the summary the service attached to a job.
	FetchSummary(ctx context.Context, externalID string) (string, error)
}
