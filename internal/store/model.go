package store

import (
	"strings"
	"time"
)

// Transcription is one stored transcript with its optional summary.
type Transcription struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Summary       string    `gorm:"type:text" json:"summary"`
	AudioFileName string    `json:"audio_file_name"`
	ExternalID    string    `gorm:"index" json:"external_id,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// HasSummary reports whether a non-blank summary is stored.
func (t *Transcription) HasSummary() bool {
	return strings.TrimSpace(t.Summary) != ""
}
