package transcriber

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/vicky469/audio-classifier/internal/config"
	"github.com/vicky469/audio-classifier/internal/logger"
)

const defaultGeminiPrompt = `Transcribe the speech in this audio verbatim. Output only the spoken words as plain text with normal punctuation. Do not summarize, translate, add speaker labels, timestamps or commentary.%s`

// generateFunc sends one request with one API key.
type generateFunc func(ctx context.Context, apiKey, model string, contents []*genai.Content) (string, error)

type implGemini struct {
	cfg      config.GeminiConfig
	logger   logger.Logger
	generate generateFunc

	mu         sync.Mutex
	currentKey int
}

func newGemini(cfg config.GeminiConfig, log logger.Logger) (Transcriber, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("gemini backend needs at least one API key (set %s)", config.EnvGeminiAPIKeys)
	}
	return &implGemini{
		cfg:      cfg,
		logger:   log,
		generate: generateContent,
	}, nil
}

func (g *implGemini) Transcribe(ctx context.Context, audioPath, language string) (Transcript, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return Transcript{}, fmt.Errorf("read audio: %w", err)
	}

	hint := ""
	if language != "" && language != "auto" {
		hint = fmt.Sprintf(" The audio is in %s.", language)
	}
	prompt := g.cfg.Prompt
	if prompt == "" {
		prompt = defaultGeminiPrompt
	}
	if strings.Contains(prompt, "%s") {
		prompt = fmt.Sprintf(prompt, hint)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, audioMIMEType(audioPath)),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	g.logger.Info(ctx, "Transcribing with %s: %s", g.cfg.Model, audioPath)
	text, err := g.callGemini(ctx, contents)
	if err != nil {
		return Transcript{}, err
	}

	outPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".txt"
	if err := os.WriteFile(outPath, []byte(strings.TrimSpace(text)+"\n"), 0644); err != nil {
		return Transcript{}, fmt.Errorf("write transcript: %w", err)
	}
	return Transcript{Path: outPath, Timed: false, Backend: config.BackendGemini}, nil
}

// callGemini tries each key once, rotating on 429 and quota errors.
func (g *implGemini) callGemini(ctx context.Context, contents []*genai.Content) (string, error) {
	var lastErr error
	for range g.cfg.APIKeys {
		key, idx := g.key()

		text, err := g.generate(ctx, key, g.cfg.Model, contents)
		if err == nil {
			return text, nil
		}
		if !isRateLimited(err) {
			return "", fmt.Errorf("generate content: %w", err)
		}
		g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
		g.rotateKey()
		lastErr = err
	}
	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *implGemini) key() (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cfg.APIKeys[g.currentKey], g.currentKey
}

func (g *implGemini) rotateKey() {
	g.mu.Lock()
	g.currentKey = (g.currentKey + 1) % len(g.cfg.APIKeys)
	g.mu.Unlock()
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func generateContent(ctx context.Context, apiKey, model string, contents []*genai.Content) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", err
	}
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}

func audioMIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mp3"
	case ".m4a":
		return "audio/mp4"
	case ".ogg", ".opus":
		return "audio/ogg"
	case ".flac":
		return "audio/flac"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
