package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tranminhduc4802/cardflow/internal/history"
	"github.com/tranminhduc4802/cardflow/internal/page"
	"github.com/tranminhduc4802/cardflow/internal/segment"
	"github.com/tranminhduc4802/cardflow/internal/thumbnail"
	"github.com/tranminhduc4802/cardflow/internal/transcript"
	"github.com/tranminhduc4802/cardflow/internal/video"
)

// Plan parses the transcript and runs segment selection without touching the
// network or the filesystem beyond reading the transcript.
func (p *implProcessor) Plan(ctx context.Context, req Request) ([]segment.Segment, []segment.Card, error) {
	entries, err := transcript.ParseFile(req.TranscriptPath)
	if err != nil {
		return nil, nil, fmt.Errorf("parse transcript: %w", err)
	}

	cardCount := req.CardCount
	if cardCount == 0 {
		cardCount = p.cfg.Pipeline.Cards
	}

	segs, err := p.finder.Find(entries, req.Keywords, cardCount)
	if err != nil {
		return nil, nil, fmt.Errorf("find segments: %w", err)
	}

	return segs, segment.Assemble(entries, segs), nil
}

// Process runs the whole pipeline for one transcript.
func (p *implProcessor) Process(ctx context.Context, req Request) (*Result, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "Starting highlight generation: %s", req.TranscriptPath)

	entries, err := transcript.ParseFile(req.TranscriptPath)
	if err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}
	p.logger.Info(ctx, "Loaded %d transcript entries", len(entries))

	cardCount := req.CardCount
	if cardCount == 0 {
		cardCount = p.cfg.Pipeline.Cards
	}

	segs := req.Segments
	if segs == nil {
		if segs, err = p.finder.Find(entries, req.Keywords, cardCount); err != nil {
			return nil, fmt.Errorf("find segments: %w", err)
		}
	}
	cards := segment.Assemble(entries, segs)
	p.logger.Info(ctx, "Selected %d segments", len(cards))

	outDir := req.OutputDir
	if outDir == "" {
		outDir = p.cfg.Paths.Output
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	videoID := ""
	if req.VideoURL != "" {
		if id, err := video.ExtractVideoID(req.VideoURL); err == nil {
			videoID = id
		} else {
			p.logger.Debug(ctx, "Not a YouTube URL, using local player: %v", err)
		}
	}

	videoPath, capture := p.prepareVideo(ctx, req, outDir)

	pageCards, err := p.buildCards(ctx, cards, videoID, videoPath, capture, outDir)
	if err != nil {
		return nil, fmt.Errorf("build cards: %w", err)
	}

	data := page.Data{
		Title:       "Video Highlights",
		Description: req.Description,
		VideoID:     videoID,
		Cards:       pageCards,
	}
	if videoID == "" && videoPath != "" {
		data.VideoFile = filepath.Base(videoPath)
	}

	pagePath, err := page.WriteFile(outDir, data)
	if err != nil {
		return nil, fmt.Errorf("write page: %w", err)
	}

	result := &Result{
		PagePath:  pagePath,
		CardCount: len(pageCards),
	}

	if req.ExportDocx {
		docxPath := filepath.Join(outDir, "highlights.docx")
		if err := page.WriteDocx(docxPath, data); err != nil {
			p.logger.Warn(ctx, "Failed to write docx digest: %v", err)
		} else {
			result.DocxPath = docxPath
		}
	}

	if p.store != nil {
		runID, err := p.store.Record(history.Run{
			SourceURL:  req.VideoURL,
			Transcript: req.TranscriptPath,
			Keywords:   strings.Join(req.Keywords, ","),
			CardCount:  len(pageCards),
			OutputPath: pagePath,
		})
		if err != nil {
			p.logger.Warn(ctx, "Failed to record run: %v", err)
		} else {
			result.RunID = runID
		}
	}

	p.logger.Info(ctx, "Generated %d cards in %s: %s", len(pageCards), time.Since(startTime).Round(time.Millisecond), pagePath)
	return result, nil
}

// prepareVideo downloads the source video and builds a frame capturer.
// Any failure degrades to placeholder thumbnails rather than failing the
// run.
func (p *implProcessor) prepareVideo(ctx context.Context, req Request, outDir string) (string, thumbnail.Generator) {
	if req.SkipDownload || req.VideoURL == "" {
		return "", nil
	}

	videoPath, err := p.downloader.Download(ctx, req.VideoURL, outDir)
	if err != nil {
		p.logger.Warn(ctx, "Video download failed, falling back to placeholders: %v", err)
		return "", nil
	}

	duration, err := thumbnail.ProbeDuration(ctx, p.cfg, p.executor, videoPath)
	if err != nil {
		p.logger.Warn(ctx, "Could not probe video duration: %v", err)
		duration = 0
	}

	return videoPath, thumbnail.New(p.cfg, p.executor, p.logger, duration)
}

// buildCards fans out per card, bounded by the concurrency limit:
// summarization with extractive fallback, thumbnail with placeholder
// fallback. The returned slice preserves card order. A cancelled context is
// an error; a partial card set must never reach the page, which numbers
// cards 1..N with no gaps.
func (p *implProcessor) buildCards(ctx context.Context, cards []segment.Card, videoID, videoPath string, capture thumbnail.Generator, outDir string) ([]page.Card, error) {
	sem := newSemaphore(p.cfg.Performance.MaxConcurrent)
	out := make([]page.Card, len(cards))

	var wg sync.WaitGroup
	for i, c := range cards {
		if err := sem.acquire(ctx); err != nil {
			break
		}
		wg.Add(1)
		go func(i int, c segment.Card) {
			defer wg.Done()
			defer sem.release()
			out[i] = p.buildCard(ctx, i+1, c, videoID, videoPath, capture, outDir)
		}(i, c)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *implProcessor) buildCard(ctx context.Context, number int, c segment.Card, videoID, videoPath string, capture thumbnail.Generator, outDir string) page.Card {
	summary := p.summarize(ctx, c.Text)

	thumbName := page.ThumbnailName(number)
	thumbPath := filepath.Join(outDir, thumbName)

	captured := false
	if capture != nil && videoPath != "" {
		if err := capture.Capture(ctx, videoPath, c.Midpoint, thumbPath); err != nil {
			p.logger.Warn(ctx, "Frame capture failed for card %d: %v", number, err)
		} else {
			captured = true
		}
	}
	if !captured {
		if err := thumbnail.Placeholder(thumbPath, 0, 0); err != nil {
			p.logger.Error(ctx, "Placeholder write failed for card %d: %v", number, err)
		}
	}

	link := ""
	if videoID != "" {
		link = video.WatchLink(videoID, c.Start)
	}

	return page.Card{
		Number:       number,
		Summary:      summary,
		Transcript:   c.Text,
		Clock:        transcript.Clock(c.Start),
		StartSeconds: int(c.Start.Seconds()),
		Thumbnail:    thumbName,
		Link:         link,
	}
}

// summarize tries the configured backend and falls back to the extractive
// strategy, which cannot fail.
func (p *implProcessor) summarize(ctx context.Context, text string) string {
	if p.summarizer != nil {
		s, err := p.summarizer.Summarize(ctx, text)
		if err == nil {
			return s
		}
		p.logger.Warn(ctx, "Summarization failed, using extractive fallback: %v", err)
	}
	s, _ := p.fallback.Summarize(ctx, text)
	return s
}
