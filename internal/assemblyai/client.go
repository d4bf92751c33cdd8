package assemblyai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/metrics"
	"github.com/nguyentantai21042004/voice-notes/internal/transcript"
)

// Transcribe runs upload -> submit -> poll -> merge for one audio blob.
func (c *implClient) Transcribe(ctx context.Context, audio []byte, extHint string) (*transcript.Result, error) {
	startTime := time.Now()
	c.logger.Info(ctx, "Starting AssemblyAI transcription process (%d bytes)", len(audio))

	result, err := c.transcribe(ctx, audio, extHint)
	c.metrics.TranscriptionFinished(outcome(err), time.Since(startTime))
	if err != nil {
		c.logger.Error(ctx, "Transcription failed after %s: %v", time.Since(startTime), err)
		return nil, err
	}

	c.logger.Info(ctx, "Transcription completed successfully: %s (%d segments)", result.ExternalID, len(result.Segments))
	return result, nil
}

func (c *implClient) transcribe(ctx context.Context, audio []byte, extHint string) (*transcript.Result, error) {
	audioPath, err := c.stageAudio(audio, extHint)
	if err != nil {
		return nil, fmt.Errorf("stage audio: %w", err)
	}
	defer c.removeTemp(ctx, audioPath)

	uploadURL, err := c.upload(ctx, audioPath)
	if err != nil {
		return nil, err
	}
	c.logger.Info(ctx, "Audio uploaded successfully: %s", uploadURL)

	id, err := c.submit(ctx, uploadURL)
	if err != nil {
		return nil, err
	}
	c.logger.Info(ctx, "Transcription request submitted: %s", id)

	job, err := c.poll(ctx, id)
	if err != nil {
		return nil, err
	}

	return &transcript.Result{
		ExternalID: id,
		Text:       job.Text,
		Confidence: job.Confidence,
		Segments:   transcript.Merge(job.Utterances),
		Summary:    job.Summary,
	}, nil
}

// FetchSummary reads the job once and returns its summary field.
func (c *implClient) FetchSummary(ctx context.Context, externalID string) (string, error) {
	job, err := c.fetchJob(ctx, externalID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(job.Summary) == "" {
		return "", ErrNoSummary
	}
	return job.Summary, nil
}

// stageAudio writes the blob to a temp file named after the extension hint.
func (c *implClient) stageAudio(audio []byte, extHint string) (string, error) {
	if err := os.MkdirAll(c.cfg.TempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	f, err := os.CreateTemp(c.cfg.TempDir, "audio-*"+tempExt(extHint))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := f.Write(audio); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return f.Name(), nil
}

func (c *implClient) removeTemp(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		c.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	}
}

// tempExt turns a hint such as "mp3", ".MP3" or "" into a safe file suffix.
func tempExt(hint string) string {
	hint = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(hint), "."))
	if hint == "" || strings.ContainsAny(hint, `./\ `) {
		return defaultExt
	}
	return "." + hint
}

func (c *implClient) upload(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", &UploadError{Err: err}
	}
	defer f.Close()

	status, body, err := c.do(ctx, http.MethodPost, "/upload", f, "application/octet-stream")
	if err != nil {
		return "", &UploadError{Err: err}
	}
	if !success(status) {
		return "", &UploadError{StatusCode: status, Body: string(body)}
	}

	var resp uploadResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &UploadError{StatusCode: status, Body: string(body), Err: fmt.Errorf("decode response: %w", err)}
	}
	if resp.UploadURL == "" {
		return "", &UploadError{StatusCode: status, Body: string(body), Err: errors.New("response has no upload_url")}
	}
	return resp.UploadURL, nil
}

func (c *implClient) submit(ctx context.Context, uploadURL string) (string, error) {
	req := submitRequest{
		AudioURL:      uploadURL,
		SpeakerLabels: c.cfg.SpeakerLabels,
	}
	if c.cfg.Summarization {
		req.Summarization = true
		req.SummaryModel = "informative"
		req.SummaryType = "paragraph"
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return "", &SubmissionError{Err: fmt.Errorf("encode request: %w", err)}
	}

	status, body, err := c.do(ctx, http.MethodPost, "/transcript", bytes.NewReader(payload), "application/json")
	if err != nil {
		return "", &SubmissionError{Err: err}
	}
	if !success(status) {
		return "", &SubmissionError{StatusCode: status, Body: string(body)}
	}

	var resp submitResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &SubmissionError{StatusCode: status, Body: string(body), Err: fmt.Errorf("decode response: %w", err)}
	}
	if resp.ID == "" {
		return "", &SubmissionError{StatusCode: status, Body: string(body), Err: errors.New("response has no id")}
	}
	return resp.ID, nil
}

// poll fetches the job until it is terminal. Non-terminal and unrecognized
// statuses wait PollInterval; the attempt after MaxPollAttempts is never made.
func (c *implClient) poll(ctx context.Context, id string) (*Job, error) {
	for attempt := 1; ; attempt++ {
		job, err := c.fetchJob(ctx, id)
		if err != nil {
			return nil, err
		}

		c.logger.Info(ctx, "Transcription status (attempt %d): %s", attempt, job.RawStatus)

		switch job.Status {
		case StatusCompleted:
			c.metrics.PollAttempts(attempt)
			return job, nil

		case StatusError:
			c.metrics.PollAttempts(attempt)
			msg := job.Error
			if msg == "" {
				msg = "Unknown error occurred"
			}
			return nil, &TranscriptionFailedError{TranscriptID: id, Message: msg}

		case StatusQueued, StatusProcessing, StatusUnknown:
			if job.Status == StatusUnknown {
				c.logger.Warn(ctx, "Unknown transcription status: %s", job.RawStatus)
			}
			if attempt >= c.cfg.MaxPollAttempts {
				c.metrics.PollAttempts(attempt)
				return nil, &TranscriptionTimeoutError{
					TranscriptID: id,
					Attempts:     attempt,
					LastStatus:   job.RawStatus,
					Unrecognized: job.Status == StatusUnknown,
				}
			}
			if err := c.sleep(ctx, c.cfg.PollInterval); err != nil {
				return nil, fmt.Errorf("poll transcript %s: %w", id, err)
			}
		}
	}
}

func (c *implClient) fetchJob(ctx context.Context, id string) (*Job, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/transcript/"+id, nil, "")
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if !success(status) {
		return nil, &TransportError{StatusCode: status, Body: string(body)}
	}

	var resp jobResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransportError{StatusCode: status, Body: string(body), Err: fmt.Errorf("decode response: %w", err)}
	}
	return resp.job(id), nil
}

// do sends one request with the credential header and returns the status and
// full body. err is only set when no response was received.
func (c *implClient) do(ctx context.Context, method, path string, body io.Reader, contentType string) (int, []byte, error) {
	url := strings.TrimRight(c.cfg.BaseURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.cfg.APIKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp.StatusCode, data, nil
}

func success(status int) bool {
	return status >= 200 && status < 300
}

func outcome(err error) string {
	var (
		uploadErr    *UploadError
		submitErr    *SubmissionError
		failedErr    *TranscriptionFailedError
		timeoutErr   *TranscriptionTimeoutError
		transportErr *TransportError
	)
	switch {
	case err == nil:
		return metrics.OutcomeCompleted
	case errors.As(err, &uploadErr):
		return metrics.OutcomeUploadError
	case errors.As(err, &submitErr):
		return metrics.OutcomeSubmissionError
	case errors.As(err, &failedErr):
		return metrics.OutcomeFailed
	case errors.As(err, &timeoutErr):
		return metrics.OutcomeTimeout
	case errors.As(err, &transportErr):
		return metrics.OutcomeTransportError
	default:
		return metrics.OutcomeAborted
	}
}
