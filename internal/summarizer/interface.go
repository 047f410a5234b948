package summarizer

import "context"

// Summarizer turns a card's transcript text into a short display string.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
