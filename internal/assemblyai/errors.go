package assemblyai

import (
	"errors"
	"fmt"
)

// ErrNoSummary is returned by FetchSummary when the job carries no summary.
var ErrNoSummary = errors.New("assemblyai: transcript has no summary")

// UploadError reports a failed audio upload. StatusCode is 0 when the request
// never got a response.
type UploadError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UploadError) Error() string {
	return describe("Audio upload failed", e.StatusCode, e.Body, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// SubmissionError reports a rejected or unreadable job-creation request.
type SubmissionError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *SubmissionError) Error() string {
	return describe("Transcription request failed", e.StatusCode, e.Body, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// TransportError reports a failed status poll. It is not retried.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	return describe("Failed to get transcription status", e.StatusCode, e.Body, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// TranscriptionFailedError carries the error message reported by the service.
type TranscriptionFailedError struct {
	TranscriptID string
	Message      string
}

func (e *TranscriptionFailedError) Error() string {
	return "Transcription failed: " + e.Message
}

// TranscriptionTimeoutError means the poll attempt ceiling was reached.
// Unrecognized is set when the last status seen was not queued or processing.
type TranscriptionTimeoutError struct {
	TranscriptID string
	Attempts     int
	LastStatus   string
	Unrecognized bool
}

func (e *TranscriptionTimeoutError) Error() string {
	if e.Unrecognized {
		return fmt.Sprintf("Transcription timeout with unknown status: %s", e.LastStatus)
	}
	return fmt.Sprintf("Transcription timeout: Maximum polling attempts (%d) reached", e.Attempts)
}

func describe(prefix string, status int, body string, err error) string {
	switch {
	case status != 0 && err != nil:
		return fmt.Sprintf("%s: %d - %s: %v", prefix, status, body, err)
	case status != 0:
		return fmt.Sprintf("%s: %d - %s", prefix, status, body)
	case err != nil:
		return fmt.Sprintf("%s: %v", prefix, err)
	default:
		return prefix
	}
}
