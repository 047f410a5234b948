// Package page renders the finished card set into a static highlight page
// and optional document exports.
package page

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
)

// Card is the per-segment view model the templates consume. Cards are
// numbered 1..N in playback order with no gaps; thumbnail filenames follow
// the numbering.
type Card struct {
	Number       int
	Summary      string
	Transcript   string
	Clock        string
	StartSeconds int
	Thumbnail    string
	Link         string
}

// ThumbnailName returns the fixed filename for card number n.
func ThumbnailName(n int) string {
	return fmt.Sprintf("thumbnail_%03d.png", n)
}

// Data is everything the highlight page template needs. Exactly one of
// VideoID (YouTube embed) or VideoFile (local HTML5 player) should be set;
// with neither, the page renders cards without a player.
type Data struct {
	Title       string
	Description string
	VideoID     string
	VideoFile   string
	Cards       []Card
}

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

// Render writes the highlight page HTML to w.
func Render(w io.Writer, data Data) error {
	if data.Title == "" {
		data.Title = "Video Highlights"
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// WriteFile renders the page into dir/index.html.
func WriteFile(dir string, data Data) (string, error) {
	path := filepath.Join(dir, "index.html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create page file: %w", err)
	}
	defer f.Close()

	if err := Render(f, data); err != nil {
		return "", err
	}
	return path, nil
}
