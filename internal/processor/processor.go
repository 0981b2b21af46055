package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/unicode/norm"

	"github.com/vicky469/audio-classifier/internal/document"
	"github.com/vicky469/audio-classifier/internal/logger"
	"github.com/vicky469/audio-classifier/internal/metadata"
	"github.com/vicky469/audio-classifier/internal/transcript"
)

// CleanSuffix is appended to the base name of every formatted transcript.
const CleanSuffix = "_clean"

// ProcessFile runs the cleaning pipeline on one caption file.
func (p *implProcessor) ProcessFile(ctx context.Context, path string, opts FileOptions) (Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	if id := logger.RunID(ctx); id != "" {
		runID = id
	} else {
		ctx = logger.WithRunID(ctx, runID)
	}

	p.logger.Info(ctx, "Processing transcript: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read transcript: %w", err)
	}
	text := norm.NFC.String(string(data))
	timed := isTimed(path, text)

	info, err := metadata.Load(path)
	if err != nil {
		p.logger.Warn(ctx, "Ignoring metadata for %s: %v", path, err)
		info = metadata.Info{}
	} else if !info.Found {
		p.logger.Warn(ctx, "No metadata found for %s, inferring language", filepath.Base(path))
	}

	cleaned := p.normalizer.Extract(text, timed)
	lang := p.resolveLanguage(opts.Language, info, path, cleaned)

	chunkSize, lineSize := p.cfg.ChunkSizes(lang)
	if opts.ChunkSize > 0 {
		chunkSize = opts.ChunkSize
	}
	if opts.LineSize > 0 {
		lineSize = opts.LineSize
	}
	formatted := p.normalizer.Format(cleaned, lang, chunkSize, lineSize)
	p.logger.Debug(ctx, "Cleaned %d bytes to %d (%s, chunk %d, line %d)", len(data), len(formatted), lang, chunkSize, lineSize)

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = p.cfg.Paths.Output
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outDir, base+CleanSuffix+".txt")
	if err := os.WriteFile(outPath, []byte(formatted), 0644); err != nil {
		return Result{}, fmt.Errorf("write transcript: %w", err)
	}

	res := Result{
		RunID:      runID,
		InputPath:  path,
		OutputPath: outPath,
		Timed:      timed,
		Language:   lang,
		Info:       info,
		Formatted:  formatted,
	}

	if p.cfg.Output.Docx {
		docxPath := filepath.Join(outDir, base+CleanSuffix+".docx")
		title := info.Title
		if title == "" {
			title = base
		}
		if err := document.Write(title, formatted, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to write docx %s: %v", docxPath, err)
		} else {
			res.DocxPath = docxPath
		}
	}

	res.Elapsed = time.Since(start)
	p.logger.Info(ctx, "Transcript written: %s (%s)", outPath, res.Elapsed.Round(time.Millisecond))
	return res, nil
}

// Process orchestrates the watch-mode pipeline for one dropped file.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	ctx = logger.WithRunID(ctx, uuid.NewString())

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting transcript processing: %s", path)
	p.logger.Info(ctx, "========================================")

	// Step 1: Move input and its metadata out of the watched directory
	workPath, err := p.moveToProcessing(ctx, path)
	if err != nil {
		return err
	}

	// Step 2: Clean and format
	res, err := p.ProcessFile(ctx, workPath, FileOptions{})
	if err != nil {
		return fmt.Errorf("process %s: %w", filepath.Base(path), err)
	}

	// Step 3: Upload when enabled, failures do not stop archiving
	if p.cfg.Notion.Upload && p.uploader != nil {
		up, err := p.uploader.Upload(ctx, res.OutputPath, res.Info, nil)
		if err != nil {
			p.logger.Warn(ctx, "Failed to upload %s: %v", res.OutputPath, err)
		} else {
			res.Upload = &up
		}
	}

	// Step 4: Archive the original
	if err := p.moveToArchived(ctx, workPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Output transcript: %s", res.OutputPath)
	if res.Upload != nil {
		p.logger.Info(ctx, "Notion page: %s", res.Upload.URL)
	}
	p.logger.Info(ctx, "Processing time: %s", res.Elapsed)
	p.logger.Info(ctx, "========================================")
	return nil
}

// ProcessAll processes paths concurrently, at most performance.max_concurrent at a time.
func (p *implProcessor) ProcessAll(ctx context.Context, paths []string, opts FileOptions) ([]Result, error) {
	results := make([]Result, len(paths))
	errs := make([]error, len(paths))
	limit := p.cfg.Performance.MaxConcurrent
	if limit < 1 {
		limit = 1
	}
	sem := semaphore.NewWeighted(int64(limit))

	var wg sync.WaitGroup
	for i, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			errs[i] = fmt.Errorf("%s: %w", path, err)
			break
		}
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer sem.Release(1)

			res, err := p.ProcessFile(ctx, path, opts)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, err)
				res = Result{InputPath: path}
			}
			results[i] = res
		}(i, path)
	}
	wg.Wait()

	return results, errors.Join(errs...)
}

// resolveLanguage picks the formatting mode: explicit override, then the
// metadata language, then the file name suffix, then CJK density.
func (p *implProcessor) resolveLanguage(override transcript.LanguageTag, info metadata.Info, path, cleaned string) transcript.LanguageTag {
	if override != transcript.LanguageAuto {
		return override
	}
	if tag := transcript.TagForLanguage(info.Language); tag != transcript.LanguageAuto {
		return tag
	}
	if tag := transcript.TagForLanguage(metadata.LanguageFromFilename(path)); tag != transcript.LanguageAuto {
		return tag
	}
	return p.normalizer.InferLanguage(cleaned)
}

// isTimed trusts caption extensions and sniffs everything else.
func isTimed(path, text string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt", ".srt":
		return true
	}
	return transcript.HasTimingMarkers(text)
}
