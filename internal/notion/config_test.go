package notion

import (
	"io"
	"testing"

	"github.com/vicky469/audio-classifier/internal/config"
	"github.com/vicky469/audio-classifier/internal/logger"
)

func TestNewFromConfig(t *testing.T) {
	log := logger.NewWithWriter("error", "text", io.Discard)

	up, err := NewFromConfig(config.NotionConfig{}, log)
	if err != nil || up != nil {
		t.Fatalf("NewFromConfig(no token) = %v, %v, want nil, nil", up, err)
	}

	up, err = NewFromConfig(config.NotionConfig{Token: "secret", DatabaseID: "db"}, log)
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	impl, ok := up.(*implUploader)
	if !ok {
		t.Fatalf("NewFromConfig() returned %T", up)
	}
	if impl.opts.DatabaseID != "db" {
		t.Errorf("DatabaseID = %q, want db", impl.opts.DatabaseID)
	}
}
