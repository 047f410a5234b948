package transcript

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

const sampleVTT = `WEBVTT

00:00:01.000 --> 00:00:04.500
Welcome to the channel,
today we build a pipeline.

00:00:04.500 --> 00:00:08.000
<b>First</b> we parse the transcript.

NOTE internal comment

00:00:08.000 --> 00:00:12.250
Then we pick the highlights.
`

const sampleSRT = `1
00:00:01,000 --> 00:00:04,500
Welcome to the channel

2
00:00:04,500 --> 00:00:08,000
First we parse the transcript
`

func TestParseVTT(t *testing.T) {
	entries, err := ParseVTT(strings.NewReader(sampleVTT))
	if err != nil {
		t.Fatalf("ParseVTT() error = %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	first := entries[0]
	if first.Start != time.Second {
		t.Errorf("Start = %v, want 1s", first.Start)
	}
	if first.End != 4500*time.Millisecond {
		t.Errorf("End = %v, want 4.5s", first.End)
	}
	if first.Text != "Welcome to the channel, today we build a pipeline." {
		t.Errorf("Text = %q", first.Text)
	}

	// Markup is stripped.
	if entries[1].Text != "First we parse the transcript." {
		t.Errorf("Text = %q, want markup stripped", entries[1].Text)
	}
}

func TestParseVTTShortTimestamps(t *testing.T) {
	// WebVTT allows omitting the hour field.
	vtt := "WEBVTT\n\n01:15.000 --> 01:20.500\nshort form cue\n"
	entries, err := ParseVTT(strings.NewReader(vtt))
	if err != nil {
		t.Fatalf("ParseVTT() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Start != time.Minute+15*time.Second {
		t.Errorf("Start = %v, want 1m15s", entries[0].Start)
	}
}

func TestParseSRT(t *testing.T) {
	entries, err := ParseSRT(strings.NewReader(sampleSRT))
	if err != nil {
		t.Fatalf("ParseSRT() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Text != "Welcome to the channel" {
		t.Errorf("Text = %q, sequence number should be dropped", entries[0].Text)
	}
	if entries[1].Start != 4500*time.Millisecond {
		t.Errorf("Start = %v, want 4.5s", entries[1].Start)
	}
}

func TestParsePasted(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"inline minute stamps", "0:15 Some intro text here\n0:42 The next part", 2},
		{"bracketed stamps", "[0:15] Some intro text\n[1:02] More text", 2},
		{"hour stamps", "1:23:45 Deep into the video", 1},
		{"dash separated", "0:15 - Some text here", 1},
		{"stamp on own line", "0:15\nText on the next line\n0:30\nMore text here", 2},
		{"chapter markers skipped", "0:15 ■ Chapter One\n0:20 Actual dialogue", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := ParsePasted(tt.input)
			if err != nil {
				t.Fatalf("ParsePasted() error = %v", err)
			}
			if len(entries) != tt.want {
				t.Errorf("got %d entries, want %d", len(entries), tt.want)
			}
		})
	}
}

func TestParsePastedEndTimes(t *testing.T) {
	entries, err := ParsePasted("0:10 one two three four five six\n0:12 next entry text")
	if err != nil {
		t.Fatalf("ParsePasted() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}

	// Estimated end is clipped 100ms before the next entry's start.
	if entries[0].End != 12*time.Second-100*time.Millisecond {
		t.Errorf("End = %v, want 11.9s", entries[0].End)
	}
	if entries[0].Start > entries[0].End {
		t.Errorf("start %v after end %v", entries[0].Start, entries[0].End)
	}
}

func TestParsePastedEmpty(t *testing.T) {
	if _, err := ParsePasted("no timestamps at all"); err == nil {
		t.Error("ParsePasted() should fail without timestamps")
	}
}

func TestWriteVTTRoundTrip(t *testing.T) {
	in := []Entry{
		{Start: 15 * time.Second, End: 20 * time.Second, Text: "first cue"},
		{Start: time.Hour + 2*time.Minute, End: time.Hour + 2*time.Minute + 5*time.Second, Text: "second cue"},
	}

	var buf bytes.Buffer
	if err := WriteVTT(&buf, in); err != nil {
		t.Fatalf("WriteVTT() error = %v", err)
	}

	out, err := ParseVTT(&buf)
	if err != nil {
		t.Fatalf("ParseVTT() error = %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d entries, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("entry %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{75 * time.Second, "1:15"},
		{10 * time.Minute, "10:00"},
		{time.Hour + 5*time.Minute + 3*time.Second, "1:05:03"},
	}

	for _, tt := range tests {
		if got := Clock(tt.d); got != tt.want {
			t.Errorf("Clock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
