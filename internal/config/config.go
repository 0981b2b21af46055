package config

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Paths         PathsConfig         `yaml:"paths"`
	Transcript    TranscriptConfig    `yaml:"transcript"`
	Format        FormatConfig        `yaml:"format"`
	Whisper       WhisperConfig       `yaml:"whisper"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Download      DownloadConfig      `yaml:"download"`
	Notion        NotionConfig        `yaml:"notion"`
	Output        OutputConfig        `yaml:"output"`
	Logging       LoggingConfig       `yaml:"logging"`
	Performance   PerformanceConfig   `yaml:"performance"`
}

type PathsConfig struct {
	Input      string `yaml:"input"`
	Processing string `yaml:"processing"`
	Output     string `yaml:"output"`
	Archived   string `yaml:"archived"`
	Temp       string `yaml:"temp"`
}

// TranscriptConfig tunes the caption cleaner.
type TranscriptConfig struct {
	MinPhraseWords   int      `yaml:"min_phrase_words"`
	MaxPhraseWords   int      `yaml:"max_phrase_words"`
	DensityThreshold float64  `yaml:"density_threshold"`
	CueWords         []string `yaml:"cue_words"`
}

// FormatConfig holds chunk and line sizes. Word sizes count words, char
// sizes count characters.
type FormatConfig struct {
	WordChunkSize int `yaml:"word_chunk_size"`
	WordLineSize  int `yaml:"word_line_size"`
	CharChunkSize int `yaml:"char_chunk_size"`
	CharLineSize  int `yaml:"char_line_size"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
	UseGPU     bool   `yaml:"use_gpu"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
	Prompt  string   `yaml:"prompt"`
}

// TranscriptionConfig picks the speech-to-text backend used when a video
// has no captions.
type TranscriptionConfig struct {
	Backend string `yaml:"backend"`
}

type DownloadConfig struct {
	BinaryPath string   `yaml:"binary_path"`
	Languages  []string `yaml:"languages"`
	Retries    int      `yaml:"retries"`
}

type NotionConfig struct {
	Token          string        `yaml:"token"`
	DatabaseID     string        `yaml:"database_id"`
	BaseURL        string        `yaml:"base_url"`
	Version        string        `yaml:"version"`
	Timeout        time.Duration `yaml:"timeout"`
	MaxRetries     int           `yaml:"max_retries"`
	BatchSize      int           `yaml:"batch_size"`
	BlockCharLimit int           `yaml:"block_char_limit"`
	// Upload makes the watcher push every processed transcript to Notion.
	Upload bool `yaml:"upload"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int           `yaml:"max_concurrent"`
	SettleDelay   time.Duration `yaml:"settle_delay"`
}

const (
	BackendWhisper = "whisper"
	BackendGemini  = "gemini"
)

// Defaults applied by Validate.
const (
	DefaultMinPhraseWords   = 3
	DefaultMaxPhraseWords   = 14
	DefaultDensityThreshold = 0.30
	DefaultWordChunkSize    = 100
	DefaultWordLineSize     = 15
	DefaultCharChunkSize    = 500
	DefaultCharLineSize     = 50
	DefaultNotionBatchSize  = 90
	DefaultNotionCharLimit  = 1800
	// NotionMaxBatchSize is the API's per-request cap on appended children.
	NotionMaxBatchSize = 100
)

// DefaultCueWords are bare noise words that auto-captions emit.
var DefaultCueWords = []string{"music", "applause", "laughter", "cheering", "background noise"}

// Validate fills defaults and rejects settings that cannot work.
func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Processing == "" {
		c.Paths.Processing = "data/processing"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	if err := c.Transcript.validate(); err != nil {
		return err
	}
	if err := c.Format.validate(); err != nil {
		return err
	}

	c.Transcription.Backend = strings.ToLower(strings.TrimSpace(c.Transcription.Backend))
	switch c.Transcription.Backend {
	case "":
		c.Transcription.Backend = BackendWhisper
	case BackendWhisper, BackendGemini:
	default:
		return fmt.Errorf("transcription.backend must be %q or %q, got %q", BackendWhisper, BackendGemini, c.Transcription.Backend)
	}

	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	if c.Download.BinaryPath == "" {
		c.Download.BinaryPath = "yt-dlp"
	}
	if len(c.Download.Languages) == 0 {
		c.Download.Languages = []string{"en", "zh-Hans", "zh"}
	}
	if c.Download.Retries == 0 {
		c.Download.Retries = 3
	}

	if err := c.Notion.validate(); err != nil {
		return err
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.SettleDelay == 0 {
		c.Performance.SettleDelay = 500 * time.Millisecond
	}

	return nil
}

func (t *TranscriptConfig) validate() error {
	if t.MinPhraseWords == 0 {
		t.MinPhraseWords = DefaultMinPhraseWords
	}
	if t.MaxPhraseWords == 0 {
		t.MaxPhraseWords = DefaultMaxPhraseWords
	}
	if t.MinPhraseWords < 1 {
		return fmt.Errorf("transcript.min_phrase_words must be positive, got %d", t.MinPhraseWords)
	}
	if t.MaxPhraseWords < t.MinPhraseWords {
		return fmt.Errorf("transcript.max_phrase_words (%d) is below min_phrase_words (%d)", t.MaxPhraseWords, t.MinPhraseWords)
	}
	if t.DensityThreshold == 0 {
		t.DensityThreshold = DefaultDensityThreshold
	}
	if t.DensityThreshold < 0 || t.DensityThreshold >= 1 {
		return fmt.Errorf("transcript.density_threshold must be in [0, 1), got %v", t.DensityThreshold)
	}
	if t.CueWords == nil {
		t.CueWords = append([]string(nil), DefaultCueWords...)
	}
	return nil
}

func (f *FormatConfig) validate() error {
	defaults := []struct {
		name  string
		value *int
		def   int
	}{
		{"word_chunk_size", &f.WordChunkSize, DefaultWordChunkSize},
		{"word_line_size", &f.WordLineSize, DefaultWordLineSize},
		{"char_chunk_size", &f.CharChunkSize, DefaultCharChunkSize},
		{"char_line_size", &f.CharLineSize, DefaultCharLineSize},
	}
	for _, d := range defaults {
		if *d.value == 0 {
			*d.value = d.def
		}
		if *d.value < 0 {
			return fmt.Errorf("format.%s must be positive, got %d", d.name, *d.value)
		}
	}
	return nil
}

func (n *NotionConfig) validate() error {
	if n.BaseURL == "" {
		n.BaseURL = "https://api.notion.com/v1"
	}
	if n.Version == "" {
		n.Version = "2022-06-28"
	}
	if n.Timeout == 0 {
		n.Timeout = 30 * time.Second
	}
	if n.MaxRetries == 0 {
		n.MaxRetries = 3
	}
	if n.BatchSize == 0 {
		n.BatchSize = DefaultNotionBatchSize
	}
	if n.BatchSize < 1 || n.BatchSize > NotionMaxBatchSize {
		return fmt.Errorf("notion.batch_size must be between 1 and %d, got %d", NotionMaxBatchSize, n.BatchSize)
	}
	if n.BlockCharLimit == 0 {
		n.BlockCharLimit = DefaultNotionCharLimit
	}
	if n.BlockCharLimit < 1 {
		return fmt.Errorf("notion.block_char_limit must be positive, got %d", n.BlockCharLimit)
	}
	if n.Upload && n.Token == "" {
		return fmt.Errorf("notion.token is required when notion.upload is set")
	}
	return nil
}
