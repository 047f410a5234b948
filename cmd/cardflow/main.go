package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/tranminhduc4802/cardflow/internal/cli"
	"github.com/tranminhduc4802/cardflow/internal/config"
	"github.com/tranminhduc4802/cardflow/internal/history"
	"github.com/tranminhduc4802/cardflow/internal/logger"
	"github.com/tranminhduc4802/cardflow/internal/processor"
	"github.com/tranminhduc4802/cardflow/internal/summarizer"
	"github.com/tranminhduc4802/cardflow/pkg/executor"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// .env is optional; it usually just carries GEMINI_API_KEYS.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	var summ summarizer.Summarizer
	if len(cfg.Gemini.APIKeys) > 0 {
		if summ, err = summarizer.NewGemini(cfg.Gemini.APIKeys, cfg.Gemini.Model, log); err != nil {
			return fmt.Errorf("initializing summarizer: %w", err)
		}
	} else {
		log.Debug(ctx, "GEMINI_API_KEYS not set, using extractive summaries")
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		log.Warn(ctx, "Run history disabled: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	deps := &cli.Dependencies{
		Config:    cfg,
		Logger:    log,
		Processor: processor.New(cfg, executor.New(), summ, store, log),
		Store:     store,
	}

	return cli.NewRootCmd(deps).ExecuteContext(ctx)
}

// loadConfig reads config.yaml when present and falls back to defaults, so
// the CLI works without any setup.
func loadConfig() (*config.Config, error) {
	path := os.Getenv("CARDFLOW_CONFIG")
	if path == "" {
		path = "config.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}
