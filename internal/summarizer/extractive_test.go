package summarizer

import (
	"context"
	"strings"
	"testing"
)

func TestExtractiveSummarize(t *testing.T) {
	ctx := context.Background()
	e := NewExtractive()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty text",
			input: "   ",
			want:  "No content available.",
		},
		{
			name:  "short text returned verbatim",
			input: "a quick note about testing",
			want:  "a quick note about testing",
		},
		{
			name:  "whitespace collapsed",
			input: "too   many\n\nspaces  here",
			want:  "too many spaces here",
		},
		{
			name:  "first sentence extracted",
			input: "In this part we configure the cluster and set up autoscaling. Then we look at monitoring and alerting dashboards.",
			want:  "In this part we configure the cluster and set up autoscaling.",
		},
		{
			name:  "question mark ends a sentence",
			input: "What happens when the pod crashes during a rolling deploy? The controller restarts it and the service keeps going.",
			want:  "What happens when the pod crashes during a rolling deploy.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Summarize(ctx, tt.input)
			if err != nil {
				t.Fatalf("Summarize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractiveWordCap(t *testing.T) {
	// Long text with no sentence boundary falls back to the word prefix.
	words := make([]string, 50)
	for i := range words {
		words[i] = "word"
	}
	input := strings.Join(words, " ")

	got, err := NewExtractive().Summarize(context.Background(), input)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if !strings.HasSuffix(got, "...") {
		t.Errorf("Summarize() = %q, want ellipsis suffix", got)
	}
	if n := len(strings.Fields(strings.TrimSuffix(got, "..."))); n != 30 {
		t.Errorf("got %d words, want 30", n)
	}
}

func TestExtractiveDeterministic(t *testing.T) {
	input := "The same input should always give the same summary. Every single time."
	e := NewExtractive()

	a, _ := e.Summarize(context.Background(), input)
	b, _ := e.Summarize(context.Background(), input)
	if a != b {
		t.Errorf("results differ: %q vs %q", a, b)
	}
}
