package segment

import (
	"testing"
	"time"

	"github.com/tranminhduc4802/cardflow/internal/transcript"
)

func TestAssemble(t *testing.T) {
	entries := []transcript.Entry{
		{Start: 0, End: 4 * time.Second, Text: "first line"},
		{Start: 4 * time.Second, End: 9 * time.Second, Text: "second line"},
		{Start: 9 * time.Second, End: 16 * time.Second, Text: "third line"},
		{Start: 16 * time.Second, End: 20 * time.Second, Text: "fourth line"},
	}

	cards := Assemble(entries, []Segment{{0, 2}, {3, 3}})
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}

	first := cards[0]
	if first.Text != "first line second line third line" {
		t.Errorf("Text = %q", first.Text)
	}
	if first.Start != 0 || first.End != 16*time.Second {
		t.Errorf("range = [%v, %v], want [0s, 16s]", first.Start, first.End)
	}
	if first.Midpoint != 8*time.Second {
		t.Errorf("Midpoint = %v, want 8s", first.Midpoint)
	}

	second := cards[1]
	if second.Text != "fourth line" {
		t.Errorf("Text = %q", second.Text)
	}
	if second.Midpoint != 18*time.Second {
		t.Errorf("Midpoint = %v, want 18s", second.Midpoint)
	}
}

func TestAssembleEmpty(t *testing.T) {
	cards := Assemble(nil, nil)
	if len(cards) != 0 {
		t.Errorf("got %d cards, want 0", len(cards))
	}
}

func TestAssembleOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range segment")
		}
	}()
	Assemble([]transcript.Entry{{Text: "only"}}, []Segment{{0, 5}})
}
