package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vicky469/audio-classifier/internal/config"
	"github.com/vicky469/audio-classifier/internal/logger"
	"github.com/vicky469/audio-classifier/pkg/executor"
)

type implWhisper struct {
	cfg      config.WhisperConfig
	ffmpeg   string
	executor executor.Executor
	logger   logger.Logger
}

func newWhisper(cfg config.WhisperConfig, ff config.FFmpegConfig, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("whisper.model_path is required for the whisper backend")
	}
	bin := ff.BinaryPath
	if bin == "" {
		bin = "ffmpeg"
	}
	return &implWhisper{
		cfg:      cfg,
		ffmpeg:   bin,
		executor: exec,
		logger:   log,
	}, nil
}

func (w *implWhisper) Transcribe(ctx context.Context, audioPath, language string) (Transcript, error) {
	wavPath, err := w.extractAudio(ctx, audioPath)
	if err != nil {
		return Transcript{}, fmt.Errorf("extract audio: %w", err)
	}
	defer w.cleanupTempFile(ctx, wavPath)

	if language == "" {
		language = w.cfg.Language
	}
	vttPath, err := w.transcribe(ctx, wavPath, language)
	if err != nil {
		return Transcript{}, fmt.Errorf("whisper transcribe: %w", err)
	}
	return Transcript{Path: vttPath, Timed: true, Backend: config.BackendWhisper}, nil
}

// extractAudio converts any input to the 16kHz mono PCM WAV whisper.cpp expects.
func (w *implWhisper) extractAudio(ctx context.Context, inputPath string) (string, error) {
	audioPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "_16k.wav"

	w.logger.Info(ctx, "Extracting audio: %s", inputPath)

	args := []string{
		"-i", inputPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := w.executor.Execute(ctx, w.ffmpeg, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}
	return audioPath, nil
}

// transcribe runs whisper.cpp with VTT output so the caption extractor can
// consume the result like a downloaded subtitle track.
func (w *implWhisper) transcribe(ctx context.Context, audioPath, language string) (string, error) {
	outputPrefix := strings.TrimSuffix(audioPath, "_16k.wav")

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.cfg.Threads, audioPath)

	// -ml 0 and -mc 0 lift segment length and context limits for long videos;
	// -bo 5 trades speed for accuracy.
	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", audioPath,
		"-ovtt",
		"-l", language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"-ml", "0",
		"-mc", "0",
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}
	if !w.cfg.UseGPU {
		args = append(args, "-ng")
	}

	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		return "", err
	}

	vttPath := outputPrefix + ".vtt"
	w.logger.Info(ctx, "Transcription completed: %s", vttPath)
	return vttPath, nil
}

func (w *implWhisper) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		w.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
		return
	}
	w.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
}
