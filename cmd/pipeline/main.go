package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"github.com/vicky469/audio-classifier/internal/config"
	"github.com/vicky469/audio-classifier/internal/logger"
	"github.com/vicky469/audio-classifier/internal/notion"
	"github.com/vicky469/audio-classifier/internal/processor"
	"github.com/vicky469/audio-classifier/internal/watcher"
)

const configPath = "config.yaml"

func main() {
	// .env is optional; it usually carries NOTION_TOKEN.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	if err := run(cfg, log); err != nil {
		log.Error(context.Background(), "%v", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	lock := flock.New(filepath.Join(cfg.Paths.Temp, "pipeline.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another pipeline is already watching %s", cfg.Paths.Input)
	}
	defer lock.Unlock()

	up, err := notion.NewFromConfig(cfg.Notion, log)
	if err != nil {
		return fmt.Errorf("create notion client: %w", err)
	}
	if cfg.Notion.Upload && up == nil {
		log.Warn(ctx, "notion.upload is set but no Notion token is configured, uploads disabled")
	}

	proc := processor.New(cfg, up, log)
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, watcher.Options{
		MaxConcurrent: cfg.Performance.MaxConcurrent,
		SettleDelay:   cfg.Performance.SettleDelay,
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	logBanner(ctx, cfg, log, up != nil)

	err = w.Start(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info(context.Background(), "Pipeline stopped")
		return nil
	}
	return fmt.Errorf("watcher: %w", err)
}

func logBanner(ctx context.Context, cfg *config.Config, log logger.Logger, uploads bool) {
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Pipeline (%s/%s)", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "  Watching:   %s", cfg.Paths.Input)
	log.Info(ctx, "  Output:     %s", cfg.Paths.Output)
	log.Info(ctx, "  Archive:    %s", cfg.Paths.Archived)
	log.Info(ctx, "  Concurrent: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "  Docx:       %t", cfg.Output.Docx)
	log.Info(ctx, "  Notion:     %t", cfg.Notion.Upload && uploads)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Processing,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
