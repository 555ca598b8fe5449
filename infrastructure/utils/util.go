package utils

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

const watchBaseURL = "https://www.youtube.com/watch"

type watchParams struct {
	V string `url:"v"`
}

// WatchURL builds the canonical watch URL for a video ID
func WatchURL(videoID string) string {
	values, err := query.Values(watchParams{V: videoID})
	if err != nil {
		return watchBaseURL + "?v=" + url.QueryEscape(videoID)
	}
	return watchBaseURL + "?" + values.Encode()
}
