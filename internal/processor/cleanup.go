package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vicky469/audio-classifier/internal/metadata"
)

// moveToProcessing moves a caption file and its metadata companion from the
// input folder to the processing folder.
func (p *implProcessor) moveToProcessing(ctx context.Context, path string) (string, error) {
	destPath := filepath.Join(p.cfg.Paths.Processing, filepath.Base(path))

	p.logger.Info(ctx, "Moving to processing folder: %s -> %s", path, destPath)

	companion, hasCompanion := metadata.Find(path)
	if err := moveFile(path, destPath); err != nil {
		return "", fmt.Errorf("move to processing: %w", err)
	}
	if hasCompanion {
		if err := moveFile(companion, filepath.Join(p.cfg.Paths.Processing, filepath.Base(companion))); err != nil {
			p.logger.Warn(ctx, "Failed to move metadata %s: %v", companion, err)
		}
	}
	return destPath, nil
}

// moveToArchived moves a processed caption file and its companion to the archive.
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))

	p.logger.Info(ctx, "Archiving original: %s -> %s", path, destPath)

	companion, hasCompanion := metadata.Find(path)
	if err := moveFile(path, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	if hasCompanion {
		if err := moveFile(companion, filepath.Join(p.cfg.Paths.Archived, filepath.Base(companion))); err != nil {
			return fmt.Errorf("move metadata to archived: %w", err)
		}
	}
	return nil
}

func moveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return os.Rename(src, dst)
}
