package notion

import (
	"context"

	"github.com/vicky469/audio-classifier/internal/metadata"
)

// Uploader publishes formatted transcripts as Notion pages.
type Uploader interface {
	// CreatePage creates the page without children, then appends its blocks
	// in batches.
	CreatePage(ctx context.Context, page Page) (Result, error)
	// Upload reads a formatted transcript file and creates a page for it.
	Upload(ctx context.Context, transcriptPath string, info metadata.Info, tags []string) (Result, error)
}

// Page is everything needed to build one Notion page.
type Page struct {
	Title   string
	Content string
	Info    metadata.Info
	Tags    []string
}

// Result identifies a created page.
type Result struct {
	PageID string
	URL    string
	Blocks int
}
