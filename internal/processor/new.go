package processor

import (
	"github.com/tranminhduc4802/cardflow/internal/config"
	"github.com/tranminhduc4802/cardflow/internal/history"
	"github.com/tranminhduc4802/cardflow/internal/logger"
	"github.com/tranminhduc4802/cardflow/internal/segment"
	"github.com/tranminhduc4802/cardflow/internal/summarizer"
	"github.com/tranminhduc4802/cardflow/internal/video"
	"github.com/tranminhduc4802/cardflow/pkg/executor"
)

type implProcessor struct {
	cfg        *config.Config
	finder     segment.Finder
	summarizer summarizer.Summarizer
	fallback   summarizer.Summarizer
	downloader video.Downloader
	executor   executor.Executor
	store      *history.Store
	logger     logger.Logger
}

// New creates a Processor. summ may be nil, in which case every card uses
// the extractive fallback. store may be nil to skip run recording.
func New(cfg *config.Config, exec executor.Executor, summ summarizer.Summarizer, store *history.Store, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		finder:     &segment.KeywordFinder{Window: cfg.Pipeline.ContextWindow},
		summarizer: summ,
		fallback:   summarizer.NewExtractive(),
		downloader: video.NewDownloader(cfg, exec, log),
		executor:   exec,
		store:      store,
		logger:     log,
	}
}
