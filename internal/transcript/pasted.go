package transcript

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Patterns for pasted transcripts: "0:15 text", "[1:23:45] text",
// "0:15 - text", "0:15: text", or a bare timestamp on its own line with the
// text following.
var (
	inlineStampRes = []*regexp.Regexp{
		regexp.MustCompile(`^\[(\d{1,2}:\d{2}:\d{2})\]\s*(.+)$`),
		regexp.MustCompile(`^\[(\d{1,2}:\d{2})\]\s*(.+)$`),
		regexp.MustCompile(`^(\d{1,2}:\d{2}:\d{2})\s*[-:]?\s*(.+)$`),
		regexp.MustCompile(`^(\d{1,2}:\d{2})\s*[-:]?\s*(.+)$`),
	}
	bareStampRe = regexp.MustCompile(`^(\d{1,2}:\d{2}(?::\d{2})?)$`)
)

// ParsePasted converts a loosely formatted pasted transcript (timestamps
// without end times) into entries. End times are estimated from text length
// at roughly three words per second, clipped to the next entry's start.
func ParsePasted(text string) ([]Entry, error) {
	stamps, texts := scanPasted(text)
	if len(stamps) == 0 {
		return nil, fmt.Errorf("no timestamped lines found")
	}

	entries := make([]Entry, 0, len(stamps))
	for i := range stamps {
		start, err := parseStamp(stamps[i])
		if err != nil {
			return nil, err
		}

		words := len(strings.Fields(texts[i]))
		est := time.Duration(float64(words)/3.0*float64(time.Second) + 0.5)
		if est < 2*time.Second {
			est = 2 * time.Second
		}
		end := start + est

		if i+1 < len(stamps) {
			if next, err := parseStamp(stamps[i+1]); err == nil && end > next-100*time.Millisecond {
				end = next - 100*time.Millisecond
			}
		}
		if end < start {
			end = start
		}

		entries = append(entries, Entry{Start: start, End: end, Text: texts[i]})
	}

	return entries, nil
}

// scanPasted returns parallel slices of raw timestamps and their text.
func scanPasted(text string) (stamps, texts []string) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	// First pass: timestamp and text on the same line.
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, re := range inlineStampRes {
			if m := re.FindStringSubmatch(line); m != nil {
				if t := strings.TrimSpace(m[2]); t != "" && !isMarkerLine(t) {
					stamps = append(stamps, m[1])
					texts = append(texts, t)
				}
				break
			}
		}
	}
	if len(stamps) > 0 {
		return stamps, texts
	}

	// Second pass: timestamps on their own lines, text below.
	var cur string
	var buf []string
	flush := func() {
		if cur != "" && len(buf) > 0 {
			stamps = append(stamps, cur)
			texts = append(texts, strings.Join(buf, " "))
		}
		buf = nil
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := bareStampRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = m[1]
			continue
		}
		if !isMarkerLine(line) {
			buf = append(buf, line)
		}
	}
	flush()

	return stamps, texts
}

// isMarkerLine reports chapter and music markers that carry no dialogue.
func isMarkerLine(s string) bool {
	return strings.HasPrefix(s, "■") || strings.HasPrefix(s, "♪")
}

func parseStamp(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")

	var h, m, sec int
	var err error
	switch len(parts) {
	case 2:
		if m, err = strconv.Atoi(parts[0]); err != nil {
			return 0, fmt.Errorf("bad timestamp %q", s)
		}
		if sec, err = strconv.Atoi(parts[1]); err != nil {
			return 0, fmt.Errorf("bad timestamp %q", s)
		}
	case 3:
		if h, err = strconv.Atoi(parts[0]); err != nil {
			return 0, fmt.Errorf("bad timestamp %q", s)
		}
		if m, err = strconv.Atoi(parts[1]); err != nil {
			return 0, fmt.Errorf("bad timestamp %q", s)
		}
		if sec, err = strconv.Atoi(parts[2]); err != nil {
			return 0, fmt.Errorf("bad timestamp %q", s)
		}
	default:
		return 0, fmt.Errorf("bad timestamp %q", s)
	}

	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}

// WriteVTT writes entries as a WebVTT file.
func WriteVTT(w io.Writer, entries []Entry) error {
	if _, err := fmt.Fprint(w, "WEBVTT\n\n"); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s --> %s\n%s\n\n", vttStamp(e.Start), vttStamp(e.End), e.Text); err != nil {
			return err
		}
	}
	return nil
}

func vttStamp(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d.%03d",
		ms/3600000, (ms%3600000)/60000, (ms%60000)/1000, ms%1000)
}
