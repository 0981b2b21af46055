package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vicky469/audio-classifier/internal/transcript"
)

func validPaths() PathsConfig {
	return PathsConfig{Input: "data/input", Output: "data/output"}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  Config{Paths: validPaths()},
			wantErr: false,
		},
		{
			name:    "missing paths",
			config:  Config{},
			wantErr: true,
		},
		{
			name:    "missing output",
			config:  Config{Paths: PathsConfig{Input: "in"}},
			wantErr: true,
		},
		{
			name: "unknown backend",
			config: Config{
				Paths:         validPaths(),
				Transcription: TranscriptionConfig{Backend: "vosk"},
			},
			wantErr: true,
		},
		{
			name: "backend is case insensitive",
			config: Config{
				Paths:         validPaths(),
				Transcription: TranscriptionConfig{Backend: "Gemini"},
			},
			wantErr: false,
		},
		{
			name: "max phrase below min",
			config: Config{
				Paths:      validPaths(),
				Transcript: TranscriptConfig{MinPhraseWords: 5, MaxPhraseWords: 4},
			},
			wantErr: true,
		},
		{
			name: "negative min phrase",
			config: Config{
				Paths:      validPaths(),
				Transcript: TranscriptConfig{MinPhraseWords: -1},
			},
			wantErr: true,
		},
		{
			name: "density threshold out of range",
			config: Config{
				Paths:      validPaths(),
				Transcript: TranscriptConfig{DensityThreshold: 1.5},
			},
			wantErr: true,
		},
		{
			name: "negative chunk size",
			config: Config{
				Paths:  validPaths(),
				Format: FormatConfig{WordChunkSize: -10},
			},
			wantErr: true,
		},
		{
			name: "notion batch over api limit",
			config: Config{
				Paths:  validPaths(),
				Notion: NotionConfig{BatchSize: 101},
			},
			wantErr: true,
		},
		{
			name: "upload without token",
			config: Config{
				Paths:  validPaths(),
				Notion: NotionConfig{Upload: true},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Paths: validPaths()}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	checks := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"min phrase", cfg.Transcript.MinPhraseWords, 3},
		{"max phrase", cfg.Transcript.MaxPhraseWords, 14},
		{"density threshold", cfg.Transcript.DensityThreshold, 0.30},
		{"cue words", cfg.Transcript.CueWords, []string{"music", "applause", "laughter", "cheering", "background noise"}},
		{"word chunk", cfg.Format.WordChunkSize, 100},
		{"word line", cfg.Format.WordLineSize, 15},
		{"char chunk", cfg.Format.CharChunkSize, 500},
		{"char line", cfg.Format.CharLineSize, 50},
		{"backend", cfg.Transcription.Backend, BackendWhisper},
		{"notion batch", cfg.Notion.BatchSize, 90},
		{"notion char limit", cfg.Notion.BlockCharLimit, 1800},
		{"notion base url", cfg.Notion.BaseURL, "https://api.notion.com/v1"},
		{"notion timeout", cfg.Notion.Timeout, 30 * time.Second},
		{"processing dir", cfg.Paths.Processing, "data/processing"},
		{"archived dir", cfg.Paths.Archived, "data/archived"},
		{"max concurrent", cfg.Performance.MaxConcurrent, 2},
		{"settle delay", cfg.Performance.SettleDelay, 500 * time.Millisecond},
		{"yt-dlp", cfg.Download.BinaryPath, "yt-dlp"},
		{"gemini model", cfg.Gemini.Model, "gemini-2.5-flash"},
	}

	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			if !reflect.DeepEqual(c.got, c.want) {
				t.Errorf("got %v, want %v", c.got, c.want)
			}
		})
	}
}

func TestValidateKeepsEmptyCueList(t *testing.T) {
	cfg := Config{Paths: validPaths(), Transcript: TranscriptConfig{CueWords: []string{}}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(cfg.Transcript.CueWords) != 0 {
		t.Errorf("CueWords = %v, want empty", cfg.Transcript.CueWords)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  input: "data/input"
  output: "data/output"

transcript:
  max_phrase_words: 10
  cue_words: ["music", "inaudible"]

format:
  word_chunk_size: 80

notion:
  database_id: "from-file"
  timeout: 10s

logging:
  level: "debug"
  format: "json"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvNotionToken, "secret-token")
	t.Setenv(EnvNotionDatabaseID, "")
	t.Setenv(EnvGeminiAPIKeys, "key-a, key-b,,")

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
	if cfg.Transcript.MaxPhraseWords != 10 || cfg.Transcript.MinPhraseWords != 3 {
		t.Errorf("phrase bounds = %d..%d, want 3..10", cfg.Transcript.MinPhraseWords, cfg.Transcript.MaxPhraseWords)
	}
	if cfg.Format.WordChunkSize != 80 || cfg.Format.WordLineSize != 15 {
		t.Errorf("word sizes = %d/%d, want 80/15", cfg.Format.WordChunkSize, cfg.Format.WordLineSize)
	}
	if cfg.Notion.Token != "secret-token" {
		t.Errorf("Token = %q, want env value", cfg.Notion.Token)
	}
	if cfg.Notion.DatabaseID != "from-file" {
		t.Errorf("DatabaseID = %q, want file value when env is empty", cfg.Notion.DatabaseID)
	}
	if cfg.Notion.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Notion.Timeout)
	}
	if want := []string{"key-a", "key-b"}; !reflect.DeepEqual(cfg.Gemini.APIKeys, want) {
		t.Errorf("APIKeys = %v, want %v", cfg.Gemini.APIKeys, want)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("paths: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should reject malformed YAML")
	}
}

func TestTranscriptOptions(t *testing.T) {
	cfg := Default()
	opts := cfg.TranscriptOptions()

	if opts.MinPhraseWords != 3 || opts.MaxPhraseWords != 14 || opts.DensityThreshold != 0.30 {
		t.Errorf("TranscriptOptions() = %+v", opts)
	}

	opts.CueWords[0] = "changed"
	if cfg.Transcript.CueWords[0] != "music" {
		t.Error("TranscriptOptions() shares the cue word slice with the config")
	}
}

func TestChunkSizes(t *testing.T) {
	cfg := Default()
	tests := []struct {
		lang      transcript.LanguageTag
		wantChunk int
		wantLine  int
	}{
		{transcript.WordSegmented, 100, 15},
		{transcript.CharacterSegmented, 500, 50},
	}

	for _, tt := range tests {
		t.Run(tt.lang.String(), func(t *testing.T) {
			chunk, line := cfg.ChunkSizes(tt.lang)
			if chunk != tt.wantChunk || line != tt.wantLine {
				t.Errorf("ChunkSizes() = %d/%d, want %d/%d", chunk, line, tt.wantChunk, tt.wantLine)
			}
		})
	}
}
