package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tranminhduc4802/cardflow/internal/segment"
)

func sampleModel() model {
	segs := []segment.Segment{{Start: 0, End: 2}, {Start: 3, End: 5}, {Start: 6, End: 9}}
	cards := []segment.Card{
		{Start: 0, End: 15 * time.Second, Text: "first part of the talk"},
		{Start: 15 * time.Second, End: 30 * time.Second, Text: "second part of the talk"},
		{Start: 30 * time.Second, End: 50 * time.Second, Text: "third part of the talk"},
	}
	return newModel(segs, cards)
}

func TestModelStartsAllSelected(t *testing.T) {
	m := sampleModel()
	if got := len(m.kept()); got != 3 {
		t.Errorf("kept() = %d segments, want 3", got)
	}
}

func TestModelToggle(t *testing.T) {
	m := sampleModel()

	// Toggling the cursor row deselects the first segment.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)

	kept := m.kept()
	if len(kept) != 2 {
		t.Fatalf("kept() = %d segments, want 2", len(kept))
	}
	if kept[0] != (segment.Segment{Start: 3, End: 5}) {
		t.Errorf("kept[0] = %+v, want the second segment", kept[0])
	}
}

func TestModelGenerateConfirms(t *testing.T) {
	m := sampleModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = next.(model)

	if !m.confirmed {
		t.Error("g should confirm when anything is selected")
	}
}

func TestModelGenerateNeedsSelection(t *testing.T) {
	m := sampleModel()

	// Deselect everything.
	for i := 0; i < 3; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = next.(model)
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(model)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = next.(model)
	if m.confirmed {
		t.Error("g should be a no-op with nothing selected")
	}
}

func TestModelQuit(t *testing.T) {
	m := sampleModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(model)
	if !m.quitting || m.confirmed {
		t.Errorf("q should quit without confirming: %+v", m)
	}
}

func TestPreviewTruncates(t *testing.T) {
	long := "one two three four five six seven eight nine ten eleven twelve thirteen fourteen"
	got := preview(long)
	if got == long {
		t.Error("long text should be truncated")
	}
	if preview("short text") != "short text" {
		t.Error("short text should pass through")
	}
}
