package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvNotionToken      = "NOTION_TOKEN"
	EnvNotionDatabaseID = "NOTION_DATABASE_ID"
	EnvGeminiAPIKeys    = "GEMINI_API_KEYS"
)

// Load reads the YAML file at path, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Default returns a validated configuration rooted at the data directory,
// used when no config file exists.
func Default() *Config {
	cfg := &Config{
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
	}
	cfg.ApplyEnv()
	// Validate cannot fail on a config with only paths set.
	_ = cfg.Validate()
	return cfg
}

// ApplyEnv copies secrets from the environment over file values.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvNotionToken); v != "" {
		c.Notion.Token = v
	}
	if v := os.Getenv(EnvNotionDatabaseID); v != "" {
		c.Notion.DatabaseID = v
	}
	if v := os.Getenv(EnvGeminiAPIKeys); v != "" {
		c.Gemini.APIKeys = splitList(v)
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
