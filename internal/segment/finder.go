// Package segment selects which spans of a transcript become highlight
// cards: keyword hits first, expanded with surrounding context, then filler
// carved from the unused parts of the transcript.
package segment

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tranminhduc4802/cardflow/internal/transcript"
)

// ErrInvalidArgument is returned for inputs the finder refuses to work with:
// a non-positive card count or an empty transcript.
var ErrInvalidArgument = errors.New("invalid argument")

// Segment is an inclusive range of transcript entry indices selected for one
// card. A finished segment set is pairwise non-overlapping and sorted by
// Start.
type Segment struct {
	Start int
	End   int
}

// Len returns the number of entries the segment covers.
func (s Segment) Len() int { return s.End - s.Start + 1 }

// Contains reports whether the entry index i falls inside the segment.
func (s Segment) Contains(i int) bool { return i >= s.Start && i <= s.End }

// Finder turns a transcript, a keyword set and a card budget into an ordered
// set of non-overlapping segments. Implementations other than the keyword
// strategy (similarity clustering, scene-change input) can be substituted
// behind this interface.
type Finder interface {
	Find(entries []transcript.Entry, keywords []string, cardCount int) ([]Segment, error)
}

// DefaultWindow is how many entries of context a keyword hit pulls in on
// each side.
const DefaultWindow = 2

// KeywordFinder is the default Finder. Entries whose text contains a keyword
// (case-insensitive substring) seed segments of up to 2*Window+1 entries;
// overlapping windows merge; a budget shortfall is filled from the unused
// transcript ranges, proportionally to their length.
type KeywordFinder struct {
	Window int
}

// NewKeywordFinder returns a KeywordFinder with the default context window.
func NewKeywordFinder() *KeywordFinder {
	return &KeywordFinder{Window: DefaultWindow}
}

// Find implements Finder.
//
// The result holds at most cardCount segments. It may hold fewer when the
// transcript cannot support the full count, which is a valid degraded
// outcome, not an error.
func (f *KeywordFinder) Find(entries []transcript.Entry, keywords []string, cardCount int) ([]Segment, error) {
	if cardCount <= 0 {
		return nil, fmt.Errorf("%w: card count must be positive, got %d", ErrInvalidArgument, cardCount)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: transcript has no entries", ErrInvalidArgument)
	}

	segs := expandHits(findHits(entries, keywords), f.Window, len(entries))

	if len(segs) > cardCount {
		// Earliest-appearing hits win. No scoring beyond document order.
		segs = segs[:cardCount]
	}

	if remaining := cardCount - len(segs); remaining > 0 {
		segs = mergeSorted(segs, fillGaps(complement(segs, len(entries)), remaining))
	}

	return segs, nil
}

// findHits returns the ordered, deduplicated indices of entries whose text
// contains any keyword, case-insensitively.
func findHits(entries []transcript.Entry, keywords []string) []int {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			lowered = append(lowered, strings.ToLower(kw))
		}
	}
	if len(lowered) == 0 {
		return nil
	}

	var hits []int
	for i, e := range entries {
		text := strings.ToLower(e.Text)
		for _, kw := range lowered {
			if strings.Contains(text, kw) {
				hits = append(hits, i)
				break
			}
		}
	}
	return hits
}

// expandHits widens each hit index into a window of surrounding context,
// clamped to the transcript bounds, and merges windows that overlap or
// touch. Hits arrive sorted, so the output is sorted too.
func expandHits(hits []int, window, n int) []Segment {
	var segs []Segment
	for _, i := range hits {
		start := i - window
		if start < 0 {
			start = 0
		}
		end := i + window
		if end > n-1 {
			end = n - 1
		}

		if len(segs) > 0 && start <= segs[len(segs)-1].End+1 {
			if end > segs[len(segs)-1].End {
				segs[len(segs)-1].End = end
			}
			continue
		}
		segs = append(segs, Segment{Start: start, End: end})
	}
	return segs
}

// complement returns the ranges of [0, n-1] not covered by segs, which must
// be sorted and non-overlapping.
func complement(segs []Segment, n int) []Segment {
	var gaps []Segment
	next := 0
	for _, s := range segs {
		if s.Start > next {
			gaps = append(gaps, Segment{Start: next, End: s.Start - 1})
		}
		next = s.End + 1
	}
	if next <= n-1 {
		gaps = append(gaps, Segment{Start: next, End: n - 1})
	}
	return gaps
}

// fillGaps distributes count filler segments over the gaps, proportionally
// to gap length with largest-remainder rounding. Ties and leftover units go
// to earlier gaps. A gap never receives more fillers than it has entries, so
// when the budget exceeds the total unused length every unused entry becomes
// its own segment and the rest of the budget lapses.
func fillGaps(gaps []Segment, count int) []Segment {
	total := 0
	for _, g := range gaps {
		total += g.Len()
	}
	if total == 0 || count <= 0 {
		return nil
	}
	if count > total {
		count = total
	}

	alloc := make([]int, len(gaps))
	rem := make([]int, len(gaps))
	assigned := 0
	for i, g := range gaps {
		alloc[i] = count * g.Len() / total
		rem[i] = count * g.Len() % total
		assigned += alloc[i]
	}

	// Hand the leftover units out by descending remainder, earlier gap on a
	// tie, skipping gaps already at capacity.
	order := make([]int, len(gaps))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rem[order[a]] > rem[order[b]]
	})
	for leftover := count - assigned; leftover > 0; {
		placed := false
		for _, i := range order {
			if leftover == 0 {
				break
			}
			if alloc[i] < gaps[i].Len() {
				alloc[i]++
				leftover--
				placed = true
			}
		}
		if !placed {
			break
		}
	}

	var fillers []Segment
	for i, g := range gaps {
		fillers = append(fillers, split(g, alloc[i])...)
	}
	return fillers
}

// split cuts a gap into k contiguous, near-equal segments, the wider ones
// first.
func split(g Segment, k int) []Segment {
	if k <= 0 {
		return nil
	}
	width := g.Len() / k
	extra := g.Len() % k

	segs := make([]Segment, 0, k)
	start := g.Start
	for i := 0; i < k; i++ {
		w := width
		if i < extra {
			w++
		}
		segs = append(segs, Segment{Start: start, End: start + w - 1})
		start += w
	}
	return segs
}

// mergeSorted merges two sorted, mutually disjoint segment sets into one
// sorted set.
func mergeSorted(a, b []Segment) []Segment {
	out := make([]Segment, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Start < b[j].Start {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
