package workflow

import (
	"context"

	"github.com/vicky469/audio-classifier/internal/metadata"
)

// Workflow runs the URL-to-Notion pipeline.
type Workflow interface {
	// Run downloads captions for url (falling back to transcription), cleans
	// them and uploads the result. Results are filled in for every step that
	// ran, even when an error is returned.
	Run(ctx context.Context, url string, tags []string) (Results, error)
	// UploadExisting uploads an already formatted transcript file.
	UploadExisting(ctx context.Context, path string, tags []string) (UploadStep, error)
}

// Results records the outcome of each Run step.
type Results struct {
	RunID    string
	Download DownloadStep
	Process  ProcessStep
	Upload   UploadStep
}

// OK reports whether every step succeeded.
func (r Results) OK() bool {
	return r.Download.Success && r.Process.Success && r.Upload.Success
}

type DownloadStep struct {
	Success     bool
	CaptionPath string
	// Transcribed is set when no captions existed and audio was transcribed.
	Transcribed bool
	Err         error
}

type ProcessStep struct {
	Success    bool
	InputPath  string
	OutputPath string
	Info       metadata.Info
	Err        error
}

type UploadStep struct {
	Success bool
	PageID  string
	PageURL string
	Err     error
}
