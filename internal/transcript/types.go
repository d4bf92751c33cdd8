// Package transcript holds the speaker-attributed transcript types shared by
// the AssemblyAI client, the store and the HTTP layer.
package transcript

// Utterance is one speaker-attributed fragment as returned by the remote service.
// Start and End are offsets in milliseconds when the service reports them.
type Utterance struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Start   *int64 `json:"start,omitempty"`
	End     *int64 `json:"end,omitempty"`
}

// SpeakerSegment is one readable speaker turn made of consecutive utterances.
type SpeakerSegment struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Start   int64  `json:"start"`
	End     *int64 `json:"end,omitempty"`
}

// Result is what a completed transcription hands back to callers.
type Result struct {
	ExternalID string           `json:"transcript_id"`
	Text       string           `json:"text"`
	Confidence *float64         `json:"confidence"`
	Segments   []SpeakerSegment `json:"speakers"`
	Summary    string           `json:"summary,omitempty"`
}
