package processor

import (
	"github.com/vicky469/audio-classifier/internal/config"
	"github.com/vicky469/audio-classifier/internal/logger"
	"github.com/vicky469/audio-classifier/internal/notion"
	"github.com/vicky469/audio-classifier/internal/transcript"
)

type implProcessor struct {
	cfg        *config.Config
	normalizer transcript.Normalizer
	uploader   notion.Uploader
	logger     logger.Logger
}

// New creates a new Processor instance. uploader may be nil, which disables
// uploads from Process.
func New(cfg *config.Config, uploader notion.Uploader, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		normalizer: transcript.New(cfg.TranscriptOptions()),
		uploader:   uploader,
		logger:     log,
	}
}
