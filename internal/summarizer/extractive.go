package summarizer

import (
	"context"
	"regexp"
	"strings"
)

var (
	spaceRe    = regexp.MustCompile(`\s+`)
	sentenceRe = regexp.MustCompile(`[.!?]+`)
)

// shortEnough is the word count below which text is returned as-is.
const shortEnough = 10

// Extractive is the deterministic fallback Summarizer: first sentence, or
// the first MaxWords words when the text has no sentence boundary. It never
// fails, so it also serves as the substitute when a model backend errors.
type Extractive struct {
	// MaxWords caps the word-prefix fallback. Zero means 30.
	MaxWords int
}

// NewExtractive returns an Extractive with the default word cap.
func NewExtractive() *Extractive {
	return &Extractive{MaxWords: 30}
}

func (e *Extractive) Summarize(_ context.Context, text string) (string, error) {
	text = strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
	if text == "" {
		return "No content available.", nil
	}

	words := strings.Fields(text)
	if len(words) <= shortEnough {
		return text, nil
	}

	if first := strings.TrimSpace(sentenceRe.Split(text, 2)[0]); first != "" && first != text {
		return first + ".", nil
	}

	max := e.MaxWords
	if max <= 0 {
		max = 30
	}
	if len(words) > max {
		return strings.Join(words[:max], " ") + "...", nil
	}
	return text, nil
}
