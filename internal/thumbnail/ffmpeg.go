package thumbnail

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tranminhduc4802/cardflow/internal/config"
	"github.com/tranminhduc4802/cardflow/internal/logger"
	"github.com/tranminhduc4802/cardflow/pkg/executor"
)

type implFFmpeg struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
	duration time.Duration
}

// New creates a Generator that extracts frames with ffmpeg. duration is the
// video length used to clamp timestamps; zero disables clamping.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger, duration time.Duration) Generator {
	return &implFFmpeg{
		cfg:      cfg,
		executor: exec,
		logger:   log,
		duration: duration,
	}
}

// Capture extracts a single frame at the given timestamp. Timestamps beyond
// the end of the video are pulled back one second inside it.
func (g *implFFmpeg) Capture(ctx context.Context, videoPath string, at time.Duration, outPath string) error {
	if g.duration > 0 && at > g.duration-time.Second {
		at = g.duration - time.Second
	}
	if at < 0 {
		at = 0
	}

	// -ss before -i seeks on the demuxer, which is fast and accurate enough
	// for thumbnails.
	args := []string{
		"-ss", formatSeconds(at),
		"-i", videoPath,
		"-frames:v", "1",
		"-q:v", "2",
		"-y",
		outPath,
	}

	g.logger.Debug(ctx, "Extracting frame at %s: %s", formatSeconds(at), outPath)

	if _, err := g.executor.Execute(ctx, g.cfg.FFmpeg.Binary, args...); err != nil {
		return fmt.Errorf("ffmpeg extract frame: %w", err)
	}
	return nil
}

// ProbeDuration asks ffprobe for the container duration.
func ProbeDuration(ctx context.Context, cfg *config.Config, exec executor.Executor, path string) (time.Duration, error) {
	out, err := exec.Execute(ctx, cfg.FFmpeg.ProbeBinary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	secs, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe output %q: %w", strings.TrimSpace(out), err)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
