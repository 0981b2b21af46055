package transcriber

import (
	"fmt"

	"github.com/vicky469/audio-classifier/internal/config"
	"github.com/vicky469/audio-classifier/internal/logger"
	"github.com/vicky469/audio-classifier/pkg/executor"
)

// New returns the backend selected by transcription.backend.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcription.Backend {
	case config.BackendGemini:
		return newGemini(cfg.Gemini, log)
	case config.BackendWhisper, "":
		return newWhisper(cfg.Whisper, cfg.FFmpeg, exec, log)
	default:
		return nil, fmt.Errorf("unknown transcription backend %q", cfg.Transcription.Backend)
	}
}
