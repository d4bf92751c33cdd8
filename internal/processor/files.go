package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToProcessing moves the file from the input folder to the processing folder
func (p *implProcessor) moveToProcessing(ctx context.Context, path string) (string, error) {
	return p.moveInto(ctx, path, p.cfg.Paths.Processing)
}

// moveToArchived moves the processed original out of the processing folder
func (p *implProcessor) moveToArchived(ctx context.Context, path string) (string, error) {
	return p.moveInto(ctx, path, p.cfg.Paths.Archived)
}

func (p *implProcessor) moveInto(ctx context.Context, path, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create dir %s: %w", dir, err)
	}
	destPath := filepath.Join(dir, filepath.Base(path))

	p.logger.Info(ctx, "Moving %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return "", fmt.Errorf("move to %s: %w", dir, err)
	}
	return destPath, nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
