package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  charmlog.Level
	}{
		{"debug", charmlog.DebugLevel},
		{"INFO", charmlog.InfoLevel},
		{"warn", charmlog.WarnLevel},
		{"warning", charmlog.WarnLevel},
		{"error", charmlog.ErrorLevel},
		{"", charmlog.InfoLevel},
		{"verbose", charmlog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := parseLevel(tt.level); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		log         func(Logger, context.Context)
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", func(l Logger, ctx context.Context) { l.Debug(ctx, "msg") }, true},
		{"debug doesn't log at info level", "info", func(l Logger, ctx context.Context) { l.Debug(ctx, "msg") }, false},
		{"info logs at info level", "info", func(l Logger, ctx context.Context) { l.Info(ctx, "msg") }, true},
		{"warn doesn't log at error level", "error", func(l Logger, ctx context.Context) { l.Warn(ctx, "msg") }, false},
		{"error always logs", "debug", func(l Logger, ctx context.Context) { l.Error(ctx, "msg") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewWithWriter(tt.configLevel, "text", &buf), context.Background())
			if got := buf.Len() > 0; got != tt.shouldLog {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.shouldLog, buf.String())
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", "text", &buf)
	log.Info(context.Background(), "formatted message: %s %d", "test", 123)

	if !strings.Contains(buf.String(), "formatted message: test 123") {
		t.Errorf("output %q missing formatted message", buf.String())
	}
}

func TestRunIDInJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", "json", &buf)
	ctx := WithRunID(context.Background(), "abc-123")
	log.Info(ctx, "processing %s", "talk.vtt")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if line["run"] != "abc-123" {
		t.Errorf("run = %v, want abc-123", line["run"])
	}
	if line["msg"] != "processing talk.vtt" {
		t.Errorf("msg = %v, want %q", line["msg"], "processing talk.vtt")
	}
}

func TestRunID(t *testing.T) {
	if got := RunID(context.Background()); got != "" {
		t.Errorf("RunID() = %q, want empty", got)
	}
	if got := RunID(WithRunID(context.Background(), "x")); got != "x" {
		t.Errorf("RunID() = %q, want x", got)
	}
}
