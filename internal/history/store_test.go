package history

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.Record(Run{
			SourceURL:  "https://youtu.be/abc",
			Transcript: "talk.vtt",
			Keywords:   "intro,demo",
			CardCount:  4,
			OutputPath: "output/talk",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	runs, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}

	// Newest first.
	if !runs[0].CreatedAt.After(runs[1].CreatedAt) {
		t.Errorf("runs not ordered newest first: %v then %v", runs[0].CreatedAt, runs[1].CreatedAt)
	}
	if runs[0].ID == "" {
		t.Error("run ID not generated")
	}
	if runs[0].CardCount != 4 || runs[0].Keywords != "intro,demo" {
		t.Errorf("run fields lost: %+v", runs[0])
	}
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := s.Record(Run{Transcript: "t.vtt", CardCount: 1, OutputPath: "o"}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	runs, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("got %d runs, want 2", len(runs))
	}
}

func TestRecentEmpty(t *testing.T) {
	s := openTestStore(t)

	runs, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs, want 0", len(runs))
	}
}
