package httpapi

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/voice-notes/internal/store"
	"github.com/nguyentantai21042004/voice-notes/internal/summarizer"
	"github.com/nguyentantai21042004/voice-notes/internal/transcript"
)

type createResponse struct {
	ID         uint                        `json:"id"`
	Text       string                      `json:"text"`
	Confidence *float64                    `json:"confidence"`
	Speakers   []transcript.SpeakerSegment `json:"speakers"`
	Success    bool                        `json:"success"`
}

type transcriptionResponse struct {
	ID            uint      `json:"id"`
	Content       string    `json:"content"`
	Summary       *string   `json:"summary"`
	AudioFileName string    `json:"audio_file_name"`
	CreatedAt     time.Time `json:"created_at"`
}

type summaryResponse struct {
	ID      uint   `json:"id"`
	Summary string `json:"summary"`
}

func newTranscriptionResponse(t *store.Transcription) transcriptionResponse {
	resp := transcriptionResponse{
		ID:            t.ID,
		Content:       t.Content,
		AudioFileName: t.AudioFileName,
		CreatedAt:     t.CreatedAt,
	}
	if t.HasSummary() {
		resp.Summary = &t.Summary
	}
	return resp
}

func errorJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func (s *implServer) listTranscriptions(c *gin.Context) {
	list, err := s.store.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "List transcriptions: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Failed to list transcriptions")
		return
	}

	resp := make([]transcriptionResponse, 0, len(list))
	for i := range list {
		resp = append(resp, newTranscriptionResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *implServer) createTranscription(c *gin.Context) {
	ctx := c.Request.Context()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.opts.MaxUploadBytes)

	fh, err := c.FormFile("audio")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			errorJSON(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("Audio file exceeds %d bytes", tooLarge.Limit))
			return
		}
		errorJSON(c, http.StatusBadRequest, "No audio file provided")
		return
	}

	// hold a slot before loading the blob so the bound also caps memory
	if err := s.slots.Acquire(ctx, 1); err != nil {
		errorJSON(c, http.StatusServiceUnavailable, "Request canceled")
		return
	}
	defer s.slots.Release(1)

	audio, err := readUpload(fh)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "No audio file provided")
		return
	}

	s.logger.Info(ctx, "Starting transcription for file: %s", fh.Filename)
	result, err := s.transcriber.Transcribe(ctx, audio, filepath.Ext(fh.Filename))
	if err != nil {
		s.logger.Error(ctx, "Transcription error: %v", err)
		errorJSON(c, http.StatusUnprocessableEntity, "Failed to transcribe audio: "+err.Error())
		return
	}

	rec := &store.Transcription{
		Content:       result.Text,
		Summary:       result.Summary,
		AudioFileName: fh.Filename,
		ExternalID:    result.ExternalID,
	}
	if err := s.store.Create(ctx, rec); err != nil {
		s.logger.Error(ctx, "Transcription error: %v", err)
		errorJSON(c, http.StatusUnprocessableEntity, "Failed to transcribe audio: "+err.Error())
		return
	}

	s.logger.Info(ctx, "Transcription completed successfully: %d", rec.ID)
	c.JSON(http.StatusOK, createResponse{
		ID:         rec.ID,
		Text:       rec.Content,
		Confidence: result.Confidence,
		Speakers:   result.Segments,
		Success:    true,
	})
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (s *implServer) getTranscription(c *gin.Context) {
	rec, ok := s.loadTranscription(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newTranscriptionResponse(rec))
}

// getSummary returns the stored summary, computing and saving it on first use.
func (s *implServer) getSummary(c *gin.Context) {
	rec, ok := s.loadTranscription(c)
	if !ok {
		return
	}

	if !rec.HasSummary() {
		ctx := c.Request.Context()
		sum := s.summarizer.Summarize(ctx, summarizer.Request{ExternalID: rec.ExternalID, Text: rec.Content})
		if err := s.store.UpdateSummary(ctx, rec.ID, sum.Text); err != nil {
			s.logger.Error(ctx, "Summary generation error: %v", err)
			errorJSON(c, http.StatusUnprocessableEntity, "Failed to generate summary: "+err.Error())
			return
		}
		s.logger.Info(ctx, "Summary generated for transcription %d", rec.ID)
		rec.Summary = sum.Text
	}

	c.JSON(http.StatusOK, summaryResponse{ID: rec.ID, Summary: rec.Summary})
}

func (s *implServer) deleteTranscription(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.store.Delete(c.Request.Context(), id); err != nil {
		s.storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *implServer) loadTranscription(c *gin.Context) (*store.Transcription, bool) {
	id, ok := parseID(c)
	if !ok {
		return nil, false
	}
	rec, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		s.storeError(c, err)
		return nil, false
	}
	return rec, true
}

func (s *implServer) storeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		errorJSON(c, http.StatusNotFound, "Transcription not found")
		return
	}
	s.logger.Error(c.Request.Context(), "Store error: %v", err)
	errorJSON(c, http.StatusInternalServerError, "Internal server error")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		errorJSON(c, http.StatusNotFound, "Transcription not found")
		return 0, false
	}
	return uint(id), true
}
