package thumbnail

import (
	"context"
	"time"
)

// Generator grabs a still image from a video at a given timestamp.
type Generator interface {
	Capture(ctx context.Context, videoPath string, at time.Duration, outPath string) error
}
