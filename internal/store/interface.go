package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no transcription has the requested id.
var ErrNotFound = errors.New("transcription not found")

// ErrEmptyContent is returned by Create when the transcript text is blank.
var ErrEmptyContent = errors.New("transcription content is required")

// Store persists transcription records.
type Store interface {
	Create(ctx context.Context, t *Transcription) error
	Get(ctx context.Context, id uint) (*Transcription, error)
	// List returns every record, newest first.
	List(ctx context.Context) ([]Transcription, error)
	UpdateSummary(ctx context.Context, id uint, summary string) error
	Delete(ctx context.Context, id uint) error
	Close() error
}
