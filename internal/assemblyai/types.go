package assemblyai

import "github.com/nguyentantai21042004/voice-notes/internal/transcript"

// Job is the client-side view of one remote transcription job. It only lives
// for the duration of a Transcribe call.
type Job struct {
	ExternalID string
	Status     Status
	// RawStatus keeps the wire value for diagnostics when Status is StatusUnknown.
	RawStatus  string
	Text       string
	Confidence *float64
	Utterances []transcript.Utterance
	Summary    string
	Error      string
}

type uploadResponse struct {
	UploadURL string `json:"upload_url"`
}

type submitRequest struct {
	AudioURL      string `json:"audio_url"`
	SpeakerLabels bool   `json:"speaker_labels,omitempty"`
	Summarization bool   `json:"summarization,omitempty"`
	SummaryModel  string `json:"summary_model,omitempty"`
	SummaryType   string `json:"summary_type,omitempty"`
}

type submitResponse struct {
	ID string `json:"id"`
}

type jobResponse struct {
	ID         string                 `json:"id"`
	Status     string                 `json:"status"`
	Text       string                 `json:"text"`
	Confidence *float64               `json:"confidence"`
	Utterances []transcript.Utterance `json:"utterances"`
	Summary    *string                `json:"summary"`
	Error      string                 `json:"error"`
}

func (r jobResponse) job(id string) *Job {
	j := &Job{
		ExternalID: id,
		Status:     ParseStatus(r.Status),
		RawStatus:  r.Status,
		Text:       r.Text,
		Confidence: r.Confidence,
		Utterances: r.Utterances,
		Error:      r.Error,
	}
	if r.Summary != nil {
		j.Summary = *r.Summary
	}
	return j
}
