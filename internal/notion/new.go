package notion

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vicky469/audio-classifier/internal/logger"
)

// Options configures the client. Zero values fall back to the API defaults
// noted on each field.
type Options struct {
	Token      string
	DatabaseID string
	// BaseURL defaults to https://api.notion.com/v1.
	BaseURL string
	// Version is sent as Notion-Version, default 2022-06-28.
	Version string
	Timeout time.Duration
	// MaxRetries bounds retries of one request after the first attempt.
	MaxRetries int
	// RetryBase is the first backoff interval, default 500ms.
	RetryBase time.Duration
	// BatchSize is the number of blocks per append request, at most 100.
	BatchSize int
	// BlockCharLimit is the soft per-paragraph length, default 1800.
	BlockCharLimit int
}

type implUploader struct {
	client *resty.Client
	opts   Options
	logger logger.Logger
}

// New creates an Uploader. The token is required.
func New(opts Options, log logger.Logger) (Uploader, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("notion token is required (set %s)", "NOTION_TOKEN")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.notion.com/v1"
	}
	if opts.Version == "" {
		opts.Version = "2022-06-28"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RetryBase == 0 {
		opts.RetryBase = 500 * time.Millisecond
	}
	if opts.BatchSize <= 0 || opts.BatchSize > maxBatchSize {
		opts.BatchSize = 90
	}
	if opts.BlockCharLimit <= 0 {
		opts.BlockCharLimit = 1800
	}
	if opts.BlockCharLimit > maxBlockChars {
		opts.BlockCharLimit = maxBlockChars
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Authorization", "Bearer "+opts.Token).
		SetHeader("Notion-Version", opts.Version).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &implUploader{
		client: client,
		opts:   opts,
		logger: log,
	}, nil
}
