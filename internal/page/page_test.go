package page

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleData() Data {
	return Data{
		Title:       "Video Highlights",
		Description: "Kubernetes from scratch",
		VideoID:     "dQw4w9WgXcQ",
		Cards: []Card{
			{
				Number:       1,
				Summary:      "Setting up the cluster.",
				Transcript:   "first we install the control plane",
				Clock:        "0:15",
				StartSeconds: 15,
				Thumbnail:    ThumbnailName(1),
				Link:         "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=15s",
			},
			{
				Number:       2,
				Summary:      "Deploying the app.",
				Transcript:   "now we apply the manifests",
				Clock:        "3:40",
				StartSeconds: 220,
				Thumbnail:    ThumbnailName(2),
			},
		},
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleData()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>Video Highlights - Kubernetes from scratch</title>",
		"thumbnail_001.png",
		"thumbnail_002.png",
		"Setting up the cluster.",
		`data-start="15"`,
		`data-start="220"`,
		`data-target="transcript-1"`,
		"Starts at: 0:15",
		"youtube.com/iframe_api",
		"transcript-1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestRenderLocalVideo(t *testing.T) {
	data := sampleData()
	data.VideoID = ""
	data.VideoFile = "video.mp4"

	var buf bytes.Buffer
	if err := Render(&buf, data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `<video id="player" src="video.mp4"`) {
		t.Error("local player missing")
	}
	if strings.Contains(out, "iframe_api") {
		t.Error("YouTube API script should not load for local video")
	}
}

func TestRenderEscapesContent(t *testing.T) {
	data := Data{
		Cards: []Card{{
			Number:     1,
			Summary:    `<script>alert("x")</script>`,
			Transcript: "plain",
			Thumbnail:  ThumbnailName(1),
		}},
	}

	var buf bytes.Buffer
	if err := Render(&buf, data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(buf.String(), `<script>alert`) {
		t.Error("card summary not escaped")
	}
}

func TestThumbnailName(t *testing.T) {
	if got := ThumbnailName(7); got != "thumbnail_007.png" {
		t.Errorf("ThumbnailName(7) = %q", got)
	}
	if got := ThumbnailName(123); got != "thumbnail_123.png" {
		t.Errorf("ThumbnailName(123) = %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(dir, sampleData())
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if path != filepath.Join(dir, "index.html") {
		t.Errorf("path = %q", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(content), "highlights-grid") {
		t.Error("written page incomplete")
	}
}

func TestWriteDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digest.docx")

	if err := WriteDocx(path, sampleData()); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx file is empty")
	}
}
