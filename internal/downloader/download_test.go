package downloader

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicky469/audio-classifier/internal/logger"
	"github.com/vicky469/audio-classifier/pkg/executor"
)

// fakeExecutor plays yt-dlp: it fails a set number of times, then writes
// the listed files into its working directory.
type fakeExecutor struct {
	failures int
	stderr   string
	files    []string
	calls    [][]string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return "", errors.New("downloader must run yt-dlp in the target directory")
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.failures > 0 {
		f.failures--
		stderr := f.stderr
		if stderr == "" {
			stderr = "ERROR: HTTP Error 429: Too Many Requests"
		}
		return "", &executor.Error{Name: name, ExitCode: 1, Stderr: stderr, Err: errors.New("exit status 1")}
	}
	for _, name := range f.files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			return "", err
		}
	}
	return "", nil
}

func newTestDownloader(exec *fakeExecutor, retries int) Downloader {
	return New(Options{
		Languages: []string{"zh-Hans", "en"},
		Retries:   retries,
		RetryBase: time.Millisecond,
	}, exec, logger.NewWithWriter("error", "text", io.Discard))
}

func TestDownloadCaptions(t *testing.T) {
	exec := &fakeExecutor{files: []string{"Talk.en.vtt", "Talk.zh-Hans.vtt", "Talk.info.json"}}
	dir := filepath.Join(t.TempDir(), "run")

	got, err := newTestDownloader(exec, 0).DownloadCaptions(context.Background(), "https://youtu.be/x", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Talk.zh-Hans.vtt"), got.CaptionPath)
	assert.Equal(t, filepath.Join(dir, "Talk.info.json"), got.InfoPath)

	require.Len(t, exec.calls, 1)
	args := strings.Join(exec.calls[0], " ")
	assert.Contains(t, args, "yt-dlp --skip-download")
	assert.Contains(t, args, "--sub-langs zh-Hans,en")
	assert.Contains(t, args, "--write-auto-sub")
	assert.Contains(t, args, "-o %(title)s.%(ext)s")
	assert.True(t, strings.HasSuffix(args, "https://youtu.be/x"))
}

func TestDownloadCaptionsRetries(t *testing.T) {
	exec := &fakeExecutor{failures: 2, files: []string{"Talk.en.vtt"}}

	got, err := newTestDownloader(exec, 3).DownloadCaptions(context.Background(), "u", t.TempDir())
	require.NoError(t, err)
	assert.Len(t, exec.calls, 3)
	assert.Equal(t, "Talk.en.vtt", filepath.Base(got.CaptionPath))
}

func TestDownloadCaptionsGivesUp(t *testing.T) {
	exec := &fakeExecutor{failures: 10}

	_, err := newTestDownloader(exec, 2).DownloadCaptions(context.Background(), "u", t.TempDir())
	require.Error(t, err)
	assert.Len(t, exec.calls, 3)
}

func TestDownloadCaptionsPermanentFailure(t *testing.T) {
	exec := &fakeExecutor{failures: 10, stderr: "ERROR: [youtube] x: Private video. Sign in if you've been granted access"}

	_, err := newTestDownloader(exec, 3).DownloadCaptions(context.Background(), "u", t.TempDir())
	require.Error(t, err)
	assert.Len(t, exec.calls, 1, "permanent failures are not retried")

	var execErr *executor.Error
	assert.ErrorAs(t, err, &execErr)
}

func TestDownloadCaptionsNone(t *testing.T) {
	exec := &fakeExecutor{files: []string{"Talk.info.json"}}

	_, err := newTestDownloader(exec, 0).DownloadCaptions(context.Background(), "u", t.TempDir())
	assert.ErrorIs(t, err, ErrNoCaptions)
}

func TestDownloadAudio(t *testing.T) {
	exec := &fakeExecutor{files: []string{"Talk.wav"}}
	dir := t.TempDir()

	got, err := newTestDownloader(exec, 0).DownloadAudio(context.Background(), "u", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Talk.wav"), got)
	assert.Contains(t, strings.Join(exec.calls[0], " "), "--extract-audio --audio-format wav")
}

func TestDownloadAudioMissingFile(t *testing.T) {
	_, err := newTestDownloader(&fakeExecutor{}, 0).DownloadAudio(context.Background(), "u", t.TempDir())
	assert.Error(t, err)
}

func TestPickCaptionFallback(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.fr.vtt", "a.de.vtt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	got, err := pickCaption(dir, []string{"en"})
	require.NoError(t, err)
	assert.Equal(t, "a.de.vtt", filepath.Base(got))
}
