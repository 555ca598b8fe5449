package utils

import (
	"net/url"
	"strings"
)

var youtubeHosts = map[string]bool{
	"youtube.com":   true,
	"m.youtube.com": true,
}

// ExtractVideoID returns the video ID carried by a YouTube URL.
// The second result is false for any URL shape that is not recognized; malformed input is a non-match.
func ExtractVideoID(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	host := strings.TrimPrefix(u.Host, "www.")

	if youtubeHosts[host] {
		switch {
		case u.Path == "/watch":
			values, ok := u.Query()["v"]
			if !ok || len(values) == 0 || values[0] == "" {
				return "", false
			}
			return values[0], true
		case strings.HasPrefix(u.Path, "/shorts/"):
			return firstSegment(strings.TrimPrefix(u.Path, "/shorts/"))
		case strings.HasPrefix(u.Path, "/live/"):
			return firstSegment(strings.TrimPrefix(u.Path, "/live/"))
		}
		return "", false
	}

	if host == "youtu.be" {
		return firstSegment(strings.Trim(u.Path, "/"))
	}
	return "", false
}

func firstSegment(path string) (string, bool) {
	id, _, _ := strings.Cut(path, "/")
	if id == "" {
		return "", false
	}
	return id, true
}
