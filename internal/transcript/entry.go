// Package transcript parses timed caption files (WebVTT, SRT) into an
// ordered, read-only sequence of entries.
package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one timed caption line. Entries are ordered by Start and
// immutable once parsed.
type Entry struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// ParseFile parses a transcript file, dispatching on its extension.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt":
		return ParseVTT(f)
	case ".srt":
		return ParseSRT(f)
	default:
		return nil, fmt.Errorf("unsupported transcript format %q (use .vtt or .srt)", filepath.Ext(path))
	}
}

// Clock renders a duration as M:SS, or H:MM:SS once it passes an hour.
func Clock(d time.Duration) string {
	s := int(d.Seconds())
	h := s / 3600
	m := (s % 3600) / 60
	sec := s % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
