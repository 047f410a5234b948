package segment

import (
	"strings"
	"time"

	"github.com/tranminhduc4802/cardflow/internal/transcript"
)

// Card is the read-only view of one finalized segment handed to the
// summarization and thumbnail stages. Midpoint anchors the thumbnail frame.
type Card struct {
	Start    time.Duration
	End      time.Duration
	Midpoint time.Duration
	Text     string
}

// Assemble turns segments into cards. Segment indices outside the entry
// range are an invariant violation and panic; Find guarantees valid indices.
func Assemble(entries []transcript.Entry, segs []Segment) []Card {
	cards := make([]Card, 0, len(segs))
	for _, s := range segs {
		texts := make([]string, 0, s.Len())
		for _, e := range entries[s.Start : s.End+1] {
			texts = append(texts, e.Text)
		}

		start := entries[s.Start].Start
		end := entries[s.End].End
		cards = append(cards, Card{
			Start:    start,
			End:      end,
			Midpoint: start + (end-start)/2,
			Text:     strings.Join(texts, " "),
		})
	}
	return cards
}
