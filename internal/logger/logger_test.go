package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"unknown level", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if New(tt.level) == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  string
		logFn     func(l Logger, ctx context.Context)
		wantEmpty bool
	}{
		{"debug suppressed at info", "info", func(l Logger, ctx context.Context) { l.Debug(ctx, "x") }, true},
		{"info emitted at info", "info", func(l Logger, ctx context.Context) { l.Info(ctx, "x") }, false},
		{"warn emitted at info", "info", func(l Logger, ctx context.Context) { l.Warn(ctx, "x") }, false},
		{"info suppressed at error", "error", func(l Logger, ctx context.Context) { l.Info(ctx, "x") }, true},
		{"error always emitted", "debug", func(l Logger, ctx context.Context) { l.Error(ctx, "x") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&buf, tt.minLevel)
			tt.logFn(log, context.Background())
			if got := buf.Len() == 0; got != tt.wantEmpty {
				t.Errorf("output empty = %v, want %v (output %q)", got, tt.wantEmpty, buf.String())
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug")
	log.Info(context.Background(), "processed %d cards for %s", 4, "video.vtt")

	out := buf.String()
	if !strings.Contains(out, "[INFO] processed 4 cards for video.vtt") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestNop(t *testing.T) {
	// Must not panic, must not write anywhere visible.
	log := Nop()
	log.Error(context.Background(), "dropped %v", "message")
}
