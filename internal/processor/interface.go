package processor

import (
	"context"
	"time"

	"github.com/vicky469/audio-classifier/internal/metadata"
	"github.com/vicky469/audio-classifier/internal/notion"
	"github.com/vicky469/audio-classifier/internal/transcript"
)

// Processor turns caption files into formatted transcripts on disk.
type Processor interface {
	// ProcessFile cleans and formats one caption file in place and writes
	// <output>/<base>_clean.txt (plus a .docx when enabled).
	ProcessFile(ctx context.Context, path string, opts FileOptions) (Result, error)
	// Process is the watcher handler: it moves the file to the processing
	// directory, processes it, optionally uploads it and archives the input.
	Process(ctx context.Context, path string) error
	// ProcessAll runs ProcessFile over paths with bounded concurrency.
	// Results keep the order of paths; failed entries have an empty OutputPath.
	ProcessAll(ctx context.Context, paths []string, opts FileOptions) ([]Result, error)
}

// FileOptions override per-file settings. Zero values use metadata and config.
type FileOptions struct {
	Language  transcript.LanguageTag
	ChunkSize int
	LineSize  int
	// OutputDir replaces paths.output when set.
	OutputDir string
}

// Result describes one processed file.
type Result struct {
	RunID      string
	InputPath  string
	OutputPath string
	DocxPath   string
	Timed      bool
	Language   transcript.LanguageTag
	Info       metadata.Info
	Formatted  string
	Upload     *notion.Result
	Elapsed    time.Duration
}
