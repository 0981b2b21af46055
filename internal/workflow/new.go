package workflow

import (
	"github.com/vicky469/audio-classifier/internal/config"
	"github.com/vicky469/audio-classifier/internal/downloader"
	"github.com/vicky469/audio-classifier/internal/logger"
	"github.com/vicky469/audio-classifier/internal/notion"
	"github.com/vicky469/audio-classifier/internal/processor"
	"github.com/vicky469/audio-classifier/internal/transcriber"
)

// Deps are the collaborators a Workflow drives. Transcriber and Uploader may
// be nil: without a transcriber videos need captions, without an uploader
// the upload step fails.
type Deps struct {
	Downloader  downloader.Downloader
	Transcriber transcriber.Transcriber
	Processor   processor.Processor
	Uploader    notion.Uploader
}

type implWorkflow struct {
	cfg    *config.Config
	deps   Deps
	logger logger.Logger
}

// New creates a Workflow.
func New(cfg *config.Config, deps Deps, log logger.Logger) Workflow {
	return &implWorkflow{
		cfg:    cfg,
		deps:   deps,
		logger: log,
	}
}
