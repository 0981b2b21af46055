package downloader

import (
	"time"

	"github.com/vicky469/audio-classifier/internal/logger"
	"github.com/vicky469/audio-classifier/pkg/executor"
)

type Options struct {
	BinaryPath string
	// Languages are subtitle languages in preference order.
	Languages []string
	Retries   int
	RetryBase time.Duration
}

type implDownloader struct {
	opts     Options
	executor executor.Executor
	logger   logger.Logger
}

// New creates a yt-dlp backed Downloader.
func New(opts Options, exec executor.Executor, log logger.Logger) Downloader {
	if opts.BinaryPath == "" {
		opts.BinaryPath = "yt-dlp"
	}
	if len(opts.Languages) == 0 {
		opts.Languages = []string{"en"}
	}
	if opts.RetryBase == 0 {
		opts.RetryBase = time.Second
	}
	return &implDownloader{
		opts:     opts,
		executor: exec,
		logger:   log,
	}
}
