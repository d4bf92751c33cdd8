package processor

import "context"

// Processor runs one media file through the transcription pipeline.
type Processor interface {
	Process(ctx context.Context, mediaPath string) error
}
