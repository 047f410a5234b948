package processor

import (
	"context"

	"github.com/tranminhduc4802/cardflow/internal/segment"
)

// Request describes one highlight-page generation.
type Request struct {
	TranscriptPath string
	VideoURL       string
	Keywords       []string
	CardCount      int
	Description    string
	OutputDir      string

	// SkipDownload generates placeholder thumbnails instead of fetching the
	// video. The page still embeds the player when VideoURL is a YouTube
	// link.
	SkipDownload bool
	// ExportDocx additionally writes a document digest of the cards.
	ExportDocx bool
	// Segments, when set, bypasses the finder. Used after interactive
	// review.
	Segments []segment.Segment
}

// Result reports what a completed run produced.
type Result struct {
	RunID     string
	PagePath  string
	DocxPath  string
	CardCount int
}

// Processor runs the transcript-to-highlight-page pipeline.
type Processor interface {
	Process(ctx context.Context, req Request) (*Result, error)
	// Plan runs only the selection stages and returns the proposed segments
	// with their assembled cards, for review before committing to a run.
	Plan(ctx context.Context, req Request) ([]segment.Segment, []segment.Card, error)
}
