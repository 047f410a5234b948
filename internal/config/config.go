package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Paths       PathsConfig       `yaml:"paths"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	YtDlp       YtDlpConfig       `yaml:"ytdlp"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	History     HistoryConfig     `yaml:"history"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PipelineConfig struct {
	Cards         int      `yaml:"cards"`
	ContextWindow int      `yaml:"context_window"`
	Keywords      []string `yaml:"keywords"`
	Description   string   `yaml:"description"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type FFmpegConfig struct {
	Binary      string `yaml:"binary"`
	ProbeBinary string `yaml:"probe_binary"`
}

type YtDlpConfig struct {
	Binary string `yaml:"binary"`
	Format string `yaml:"format"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
	// APIKeys is populated from GEMINI_API_KEYS, never from the yaml file.
	APIKeys []string `yaml:"-"`
}

type HistoryConfig struct {
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads a yaml config file, applies env overrides and defaults, and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a usable configuration without a config file, so the CLI
// works out of the box with flags alone.
func Default() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		// Validate only fails on required fields, all of which have defaults.
		panic(err)
	}
	return cfg
}

func (c *Config) applyEnv() {
	if keys := os.Getenv("GEMINI_API_KEYS"); keys != "" {
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				c.Gemini.APIKeys = append(c.Gemini.APIKeys, k)
			}
		}
	}
}

func (c *Config) Validate() error {
	if c.Pipeline.Cards < 0 {
		return fmt.Errorf("pipeline.cards must be positive")
	}
	if c.Pipeline.ContextWindow < 0 {
		return fmt.Errorf("pipeline.context_window must not be negative")
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	if c.Pipeline.Cards == 0 {
		c.Pipeline.Cards = 4
	}
	if c.Pipeline.ContextWindow == 0 {
		c.Pipeline.ContextWindow = 2
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "output"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = "ffmpeg"
	}
	if c.FFmpeg.ProbeBinary == "" {
		c.FFmpeg.ProbeBinary = "ffprobe"
	}
	if c.YtDlp.Binary == "" {
		c.YtDlp.Binary = "yt-dlp"
	}
	if c.YtDlp.Format == "" {
		c.YtDlp.Format = "bv*[ext=mp4]+ba[ext=m4a]/b[ext=mp4]/b"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.History.Path == "" {
		c.History.Path = "data/cardflow.sqlite"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
