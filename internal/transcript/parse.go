package transcript

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// 00:01:02.500 --> 00:01:05.000, hours optional in WebVTT.
	vttCueRe = regexp.MustCompile(`(?:(\d{1,2}):)?(\d{1,2}):(\d{2})\.(\d{3})\s*-->\s*(?:(\d{1,2}):)?(\d{1,2}):(\d{2})\.(\d{3})`)
	// 00:01:02,500 --> 00:01:05,000
	srtCueRe = regexp.MustCompile(`(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})`)

	blockSplitRe = regexp.MustCompile(`\n\s*\n`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	indexLineRe  = regexp.MustCompile(`^\d+$`)
)

// ParseVTT parses a WebVTT transcript. Cues without text are dropped.
func ParseVTT(r io.Reader) ([]Entry, error) {
	return parseCues(r, vttCueRe, vttTimes)
}

// ParseSRT parses an SRT transcript. Sequence-number lines and cues
// without text are dropped.
func ParseSRT(r io.Reader) ([]Entry, error) {
	return parseCues(r, srtCueRe, srtTimes)
}

func parseCues(r io.Reader, cueRe *regexp.Regexp, times func([]string) (time.Duration, time.Duration)) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	var entries []Entry
	for _, block := range blockSplitRe.Split(strings.TrimSpace(string(data)), -1) {
		lines := strings.Split(strings.TrimSpace(block), "\n")

		var start, end time.Duration
		var texts []string
		found := false

		for _, line := range lines {
			if m := cueRe.FindStringSubmatch(line); m != nil {
				start, end = times(m)
				found = true
				continue
			}
			line = strings.TrimSpace(tagRe.ReplaceAllString(line, ""))
			if line == "" || indexLineRe.MatchString(line) {
				continue
			}
			texts = append(texts, line)
		}

		if found && len(texts) > 0 {
			entries = append(entries, Entry{Start: start, End: end, Text: strings.Join(texts, " ")})
		}
	}

	return entries, nil
}

func vttTimes(m []string) (time.Duration, time.Duration) {
	return hmsms(m[1], m[2], m[3], m[4]), hmsms(m[5], m[6], m[7], m[8])
}

func srtTimes(m []string) (time.Duration, time.Duration) {
	return hmsms(m[1], m[2], m[3], m[4]), hmsms(m[5], m[6], m[7], m[8])
}

func hmsms(h, m, s, ms string) time.Duration {
	hours, _ := strconv.Atoi(h) // empty when hours are omitted
	mins, _ := strconv.Atoi(m)
	secs, _ := strconv.Atoi(s)
	millis, _ := strconv.Atoi(ms)

	return time.Duration(hours)*time.Hour +
		time.Duration(mins)*time.Minute +
		time.Duration(secs)*time.Second +
		time.Duration(millis)*time.Millisecond
}
