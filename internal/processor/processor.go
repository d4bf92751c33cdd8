package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/export"
	"github.com/nguyentantai21042004/voice-notes/internal/store"
	"github.com/nguyentantai21042004/voice-notes/internal/summarizer"
)

// Process orchestrates the pipeline for one dropped file. On failure the file
// stays in the processing folder.
func (p *implProcessor) Process(ctx context.Context, mediaPath string) error {
	startTime := time.Now()
	filename := filepath.Base(mediaPath)
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	if !IsSupported(mediaPath) {
		return fmt.Errorf("unsupported format: %s", filename)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting processing: %s", mediaPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Claim the file
	workPath, err := p.moveToProcessing(ctx, mediaPath)
	if err != nil {
		return err
	}

	// Step 2: Extract audio from video inputs
	audioPath := workPath
	if IsVideo(workPath) {
		audioPath, err = p.extractAudio(ctx, workPath)
		if err != nil {
			return fmt.Errorf("extract audio: %w", err)
		}
		defer p.cleanupTempFile(ctx, audioPath)
	}

	// Step 3: Transcribe
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return fmt.Errorf("read audio: %w", err)
	}
	result, err := p.transcriber.Transcribe(ctx, audio, filepath.Ext(audioPath))
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	// Step 4: Store the transcript
	rec := &store.Transcription{
		Content:       result.Text,
		AudioFileName: filename,
		ExternalID:    result.ExternalID,
	}
	if err := p.store.Create(ctx, rec); err != nil {
		return fmt.Errorf("store transcription: %w", err)
	}

	// Step 5: Summarize, preferring a summary that came back with the job
	sum := summarizer.Summary{Text: result.Summary, Source: summarizer.SourceRemote}
	if strings.TrimSpace(sum.Text) == "" {
		sum = p.summarizer.Summarize(ctx, summarizer.Request{ExternalID: result.ExternalID, Text: result.Text})
	}
	if err := p.store.UpdateSummary(ctx, rec.ID, sum.Text); err != nil {
		p.logger.Warn(ctx, "Failed to save summary for %d: %v", rec.ID, err)
	}

	// Step 6: Export
	files, err := p.exporter.Export(ctx, export.Document{
		Title:         base,
		CreatedAt:     rec.CreatedAt,
		Text:          result.Text,
		Confidence:    result.Confidence,
		Segments:      result.Segments,
		Summary:       sum.Text,
		SummarySource: sum.Source,
	}, p.cfg.Paths.Output, base)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	// Step 7: Archive the original
	if _, err := p.moveToArchived(ctx, workPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Transcription id: %d (%s)", rec.ID, result.ExternalID)
	p.logger.Info(ctx, "Output: %s, %s", files.Markdown, files.Docx)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}
