package downloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sethvargo/go-retry"

	"github.com/vicky469/audio-classifier/pkg/executor"
)

// outputTemplate is relative; yt-dlp runs inside the target directory.
const outputTemplate = "%(title)s.%(ext)s"

// permanentFailures are yt-dlp stderr fragments that no retry will fix.
var permanentFailures = []string{
	"Unsupported URL",
	"Video unavailable",
	"Private video",
	"is not a valid URL",
	"This video has been removed",
}

func (d *implDownloader) DownloadCaptions(ctx context.Context, url, dir string) (Captions, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Captions{}, fmt.Errorf("create download dir: %w", err)
	}

	args := []string{
		"--skip-download",
		"--write-sub",
		"--write-auto-sub",
		"--sub-langs", strings.Join(d.opts.Languages, ","),
		"--sub-format", "vtt",
		"--write-info-json",
		"--no-playlist",
		"--no-warnings",
		"-o", outputTemplate,
		url,
	}

	d.logger.Info(ctx, "Downloading captions: %s", url)
	if err := d.run(ctx, dir, args); err != nil {
		return Captions{}, fmt.Errorf("download captions: %w", err)
	}

	caption, err := pickCaption(dir, d.opts.Languages)
	if err != nil {
		return Captions{}, err
	}

	info, _ := firstMatch(dir, "*.info.json")
	d.logger.Info(ctx, "Captions downloaded: %s", filepath.Base(caption))
	return Captions{CaptionPath: caption, InfoPath: info}, nil
}

func (d *implDownloader) DownloadAudio(ctx context.Context, url, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	args := []string{
		"--extract-audio",
		"--audio-format", "wav",
		"--no-playlist",
		"--no-warnings",
		"-o", outputTemplate,
		url,
	}

	d.logger.Info(ctx, "Downloading audio: %s", url)
	if err := d.run(ctx, dir, args); err != nil {
		return "", fmt.Errorf("download audio: %w", err)
	}

	audio, ok := firstMatch(dir, "*.wav")
	if !ok {
		return "", fmt.Errorf("download audio: no wav file written to %s", dir)
	}
	return audio, nil
}

// run invokes yt-dlp in dir with exponential backoff. Cancellation and
// permanent failures stop retrying.
func (d *implDownloader) run(ctx context.Context, dir string, args []string) error {
	backoff := retry.WithMaxRetries(uint64(d.opts.Retries), retry.NewExponential(d.opts.RetryBase))
	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if _, err := d.executor.ExecuteInDir(ctx, dir, d.opts.BinaryPath, args...); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if isPermanent(err) {
				return err
			}
			d.logger.Warn(ctx, "yt-dlp attempt %d failed: %v", attempt, err)
			return retry.RetryableError(err)
		}
		return nil
	})
}

// pickCaption returns the caption for the most preferred language, falling
// back to the first caption file by name.
func pickCaption(dir string, languages []string) (string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.vtt"))
	if err != nil {
		return "", fmt.Errorf("list captions: %w", err)
	}
	if len(files) == 0 {
		return "", ErrNoCaptions
	}
	sort.Strings(files)

	for _, lang := range languages {
		suffix := "." + strings.ToLower(lang) + ".vtt"
		for _, f := range files {
			if strings.HasSuffix(strings.ToLower(f), suffix) {
				return f, nil
			}
		}
	}
	return files[0], nil
}

func firstMatch(dir, pattern string) (string, bool) {
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil || len(files) == 0 {
		return "", false
	}
	sort.Strings(files)
	return files[0], true
}

func isPermanent(err error) bool {
	var execErr *executor.Error
	if !errors.As(err, &execErr) {
		return false
	}
	for _, msg := range permanentFailures {
		if strings.Contains(execErr.Stderr, msg) {
			return true
		}
	}
	return false
}
