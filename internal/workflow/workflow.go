package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/vicky469/audio-classifier/internal/downloader"
	"github.com/vicky469/audio-classifier/internal/logger"
	"github.com/vicky469/audio-classifier/internal/metadata"
	"github.com/vicky469/audio-classifier/internal/processor"
)

// ErrNoUploader is returned by upload steps when Notion is not configured.
var ErrNoUploader = errors.New("notion uploader not configured")

var (
	runTags      = []string{"transcript", "youtube", "video"}
	existingTags = []string{"transcript", "notes"}
)

func (w *implWorkflow) Run(ctx context.Context, url string, tags []string) (Results, error) {
	res := Results{RunID: uuid.NewString()}
	ctx = logger.WithRunID(ctx, res.RunID)

	w.logger.Info(ctx, "Starting workflow: %s", url)

	runDir := filepath.Join(w.cfg.Paths.Temp, res.RunID)
	defer w.cleanupDir(ctx, runDir)

	// Step 1: Download captions, or audio for transcription
	res.Download = w.download(ctx, url, runDir)
	if !res.Download.Success {
		return res, fmt.Errorf("download: %w", res.Download.Err)
	}

	// Step 2: Copy into the processing folder and clean
	res.Process = w.process(ctx, res.Download.CaptionPath)
	if !res.Process.Success {
		return res, fmt.Errorf("process: %w", res.Process.Err)
	}

	// Step 3: Upload
	if len(tags) == 0 {
		tags = DefaultTags(res.Process.Info)
	}
	res.Upload = w.upload(ctx, res.Process.OutputPath, res.Process.Info, tags)
	if !res.Upload.Success {
		return res, fmt.Errorf("upload: %w", res.Upload.Err)
	}

	w.removeProcessed(ctx, res.Process.InputPath)
	w.logger.Info(ctx, "Workflow completed: %s", res.Upload.PageURL)
	return res, nil
}

func (w *implWorkflow) UploadExisting(ctx context.Context, path string, tags []string) (UploadStep, error) {
	if len(tags) == 0 {
		tags = existingTags
	}
	if _, err := os.Stat(path); err != nil {
		return UploadStep{Err: err}, fmt.Errorf("upload: %w", err)
	}
	info, err := metadata.Load(path)
	if err != nil {
		w.logger.Warn(ctx, "Ignoring metadata for %s: %v", path, err)
		info = metadata.Info{}
	}
	step := w.upload(ctx, path, info, tags)
	if !step.Success {
		return step, fmt.Errorf("upload: %w", step.Err)
	}
	return step, nil
}

// DefaultTags are the tags for a downloaded video: transcript, youtube,
// video and the uploader's name as a slug.
func DefaultTags(info metadata.Info) []string {
	tags := append([]string(nil), runTags...)
	if slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(info.Uploader)), " ", "-"); slug != "" {
		tags = append(tags, slug)
	}
	return tags
}

func (w *implWorkflow) download(ctx context.Context, url, runDir string) DownloadStep {
	caps, err := w.deps.Downloader.DownloadCaptions(ctx, url, runDir)
	if err == nil {
		return DownloadStep{Success: true, CaptionPath: caps.CaptionPath}
	}
	if !errors.Is(err, downloader.ErrNoCaptions) || w.deps.Transcriber == nil {
		return DownloadStep{Err: err}
	}

	w.logger.Warn(ctx, "No captions for %s, transcribing audio instead", url)
	audio, err := w.deps.Downloader.DownloadAudio(ctx, url, runDir)
	if err != nil {
		return DownloadStep{Err: err}
	}
	tr, err := w.deps.Transcriber.Transcribe(ctx, audio, "")
	if err != nil {
		return DownloadStep{Err: fmt.Errorf("transcribe: %w", err)}
	}
	return DownloadStep{Success: true, CaptionPath: tr.Path, Transcribed: true}
}

func (w *implWorkflow) process(ctx context.Context, captionPath string) ProcessStep {
	processPath := filepath.Join(w.cfg.Paths.Processing, filepath.Base(captionPath))
	if err := copyFile(captionPath, processPath); err != nil {
		return ProcessStep{Err: fmt.Errorf("copy to processing: %w", err)}
	}
	if companion, ok := metadata.Find(captionPath); ok {
		if err := copyFile(companion, filepath.Join(w.cfg.Paths.Processing, filepath.Base(companion))); err != nil {
			w.logger.Warn(ctx, "Failed to copy metadata %s: %v", companion, err)
		}
	}
	w.logger.Info(ctx, "Copied to processing folder: %s", processPath)

	res, err := w.deps.Processor.ProcessFile(ctx, processPath, processor.FileOptions{})
	if err != nil {
		return ProcessStep{InputPath: processPath, Err: err}
	}
	return ProcessStep{Success: true, InputPath: processPath, OutputPath: res.OutputPath, Info: res.Info}
}

func (w *implWorkflow) upload(ctx context.Context, path string, info metadata.Info, tags []string) UploadStep {
	if w.deps.Uploader == nil {
		return UploadStep{Err: ErrNoUploader}
	}
	up, err := w.deps.Uploader.Upload(ctx, path, info, tags)
	if err != nil {
		return UploadStep{Err: err}
	}
	return UploadStep{Success: true, PageID: up.PageID, PageURL: up.URL}
}

// removeProcessed deletes the processing copy and its companion after a
// successful upload.
func (w *implWorkflow) removeProcessed(ctx context.Context, path string) {
	companion, hasCompanion := metadata.Find(path)
	w.removeFile(ctx, path)
	if hasCompanion {
		w.removeFile(ctx, companion)
	}
}

func (w *implWorkflow) removeFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		w.logger.Warn(ctx, "Could not clean up %s: %v", path, err)
		return
	}
	w.logger.Debug(ctx, "Cleaned up %s", path)
}

func (w *implWorkflow) cleanupDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		w.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	}
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
