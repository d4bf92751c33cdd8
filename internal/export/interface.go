package export

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/transcript"
)

// Document is everything written for one transcribed file.
type Document struct {
	Title         string
	CreatedAt     time.Time
	Text          string
	Confidence    *float64
	Segments      []transcript.SpeakerSegment
	Summary       string
	SummarySource string
}

// Files lists the paths produced by Export.
type Files struct {
	Markdown string
	Docx     string
}

// Exporter writes a Document as <base>.md and <base>.docx into a directory.
type Exporter interface {
	Export(ctx context.Context, doc Document, dir, base string) (Files, error)
}
