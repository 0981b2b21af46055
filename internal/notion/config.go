package notion

import (
	"github.com/vicky469/audio-classifier/internal/config"
	"github.com/vicky469/audio-classifier/internal/logger"
)

// NewFromConfig creates an Uploader from the notion config section. It
// returns a nil Uploader and no error when no token is configured.
func NewFromConfig(c config.NotionConfig, log logger.Logger) (Uploader, error) {
	if c.Token == "" {
		return nil, nil
	}
	return New(Options{
		Token:          c.Token,
		DatabaseID:     c.DatabaseID,
		BaseURL:        c.BaseURL,
		Version:        c.Version,
		Timeout:        c.Timeout,
		MaxRetries:     c.MaxRetries,
		BatchSize:      c.BatchSize,
		BlockCharLimit: c.BlockCharLimit,
	}, log)
}
