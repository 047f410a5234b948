// Package video retrieves source videos and resolves YouTube links.
package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tranminhduc4802/cardflow/internal/config"
	"github.com/tranminhduc4802/cardflow/internal/logger"
	"github.com/tranminhduc4802/cardflow/pkg/executor"
)

// Downloader fetches a video into a working directory and returns the local
// file path.
type Downloader interface {
	Download(ctx context.Context, url, dir string) (string, error)
}

type implYtDlp struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// NewDownloader creates a yt-dlp backed Downloader.
func NewDownloader(cfg *config.Config, exec executor.Executor, log logger.Logger) Downloader {
	return &implYtDlp{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// Download fetches the video as video.mp4 inside dir, merging best video and
// audio streams.
func (d *implYtDlp) Download(ctx context.Context, url, dir string) (string, error) {
	d.logger.Info(ctx, "Downloading video: %s", url)

	args := []string{
		"-f", d.cfg.YtDlp.Format,
		"-o", filepath.Join(dir, "video.%(ext)s"),
		"--merge-output-format", "mp4",
		url,
	}

	if _, err := d.executor.Execute(ctx, d.cfg.YtDlp.Binary, args...); err != nil {
		return "", fmt.Errorf("yt-dlp download: %w", err)
	}

	// yt-dlp may land on a different container before the merge step; take
	// whatever video.* it produced and normalize the name.
	want := filepath.Join(dir, "video.mp4")
	matches, err := filepath.Glob(filepath.Join(dir, "video.*"))
	if err != nil || len(matches) == 0 {
		return "", fmt.Errorf("yt-dlp produced no video file in %s", dir)
	}
	if matches[0] != want {
		if err := os.Rename(matches[0], want); err != nil {
			return "", fmt.Errorf("rename downloaded video: %w", err)
		}
	}

	d.logger.Info(ctx, "Video downloaded: %s", want)
	return want, nil
}
