package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

func (e *implExporter) Export(ctx context.Context, doc Document, dir, base string) (Files, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Files{}, fmt.Errorf("create output dir: %w", err)
	}

	md := Markdown(doc)
	files := Files{
		Markdown: filepath.Join(dir, base+".md"),
		Docx:     filepath.Join(dir, base+".docx"),
	}

	if err := os.WriteFile(files.Markdown, []byte(md), 0644); err != nil {
		return Files{}, fmt.Errorf("write markdown: %w", err)
	}
	e.logger.Info(ctx, "Saved: %s", files.Markdown)

	if err := markdownToDocx(md, files.Docx); err != nil {
		return Files{}, fmt.Errorf("write docx: %w", err)
	}
	e.logger.Info(ctx, "Saved: %s", files.Docx)

	return files, nil
}
