package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// extractAudio pulls the audio track of a video into a mono WAV file under
// the temp folder.
func (p *implProcessor) extractAudio(ctx context.Context, videoPath string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	// unique per job; two inputs may share a base name
	f, err := os.CreateTemp(p.cfg.Paths.Temp, base+"-*_audio.wav")
	if err != nil {
		return "", fmt.Errorf("create temp audio: %w", err)
	}
	audioPath := f.Name()
	f.Close()

	p.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn", // no video
		"-ar", strconv.Itoa(p.cfg.FFmpeg.SampleRate),
		"-ac", "1",
		"-c:a", p.cfg.FFmpeg.AudioCodec,
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		p.cleanupTempFile(ctx, audioPath)
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}
