package main

import (
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"github.com/vicky469/audio-classifier/internal/config"
	"github.com/vicky469/audio-classifier/internal/logger"
	"github.com/vicky469/audio-classifier/internal/notion"
)

type commandContext struct {
	configFlag *string
	levelFlag  *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
	log        logger.Logger
}

func newCommandContext(configFlag, levelFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		levelFlag:  levelFlag,
	}
}

// ensureConfig loads .env and the config file once. A missing config file
// falls back to config.Default.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		_ = godotenv.Load()

		path := "config.yaml"
		if c.configFlag != nil && strings.TrimSpace(*c.configFlag) != "" {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if errors.Is(err, os.ErrNotExist) {
			cfg, err = config.Default(), nil
		}
		if err != nil {
			c.configErr = err
			return
		}
		if c.levelFlag != nil && *c.levelFlag != "" {
			cfg.Logging.Level = *c.levelFlag
		}
		c.config = cfg
		// Logs go to stderr so stdout carries only command output.
		c.log = logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	})
	return c.config, c.configErr
}

func (c *commandContext) uploader() (notion.Uploader, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return notion.NewFromConfig(cfg.Notion, c.log)
}
