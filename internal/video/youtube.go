package video

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ExtractVideoID pulls the 11-character video ID out of the usual YouTube
// URL shapes: youtu.be/ID, watch?v=ID, /embed/ID and /v/ID.
func ExtractVideoID(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return id, nil
		}
	case "youtube.com":
		if u.Path == "/watch" {
			if id := u.Query().Get("v"); id != "" {
				return id, nil
			}
		}
		for _, prefix := range []string{"/embed/", "/v/"} {
			if strings.HasPrefix(u.Path, prefix) {
				if id := strings.Trim(strings.TrimPrefix(u.Path, prefix), "/"); id != "" {
					return id, nil
				}
			}
		}
	}

	return "", fmt.Errorf("cannot extract video ID from URL: %s", rawURL)
}

// WatchLink builds a YouTube watch URL that starts playback at the given
// offset.
func WatchLink(videoID string, at time.Duration) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s&t=%ds", videoID, int(at.Seconds()))
}
