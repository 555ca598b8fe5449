package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const videoResponse = `{"items":[{"id":"dQw4w9WgXcQ","snippet":{"title":"Never Gonna <Give>","description":"说明","publishedAt":"2009-10-25T06:57:33Z"},"contentDetails":{"duration":"PT3M33S"},"statistics":{"viewCount":"1000","likeCount":"20"}}]}`

// isolate runs the command from an empty directory with a clean environment
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "YOUTUBE_API_KEY", "YOUTUBE_API_ENDPOINT", "YTDLP_PATH", "YTDLP_COOKIE_FILE",
		"RENDER_LOCALE", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func startAPI(t *testing.T) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(videoResponse))
	}))
	t.Cleanup(srv.Close)
	t.Setenv("YOUTUBE_API_ENDPOINT", srv.URL+"/")
}

func execute(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	isolate(t)
	code, _, stderr := execute()
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage: ytmeta")
}

func TestRun_ExtractionFailed(t *testing.T) {
	isolate(t)
	code, stdout, stderr := execute("--key", "secret", "https://example.com/watch?v=abc")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unable to parse video ID from URL")
}

func TestRun_MissingCredential(t *testing.T) {
	isolate(t)
	code, stdout, stderr := execute("https://youtu.be/dQw4w9WgXcQ")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "missing API key, provide --key or set YOUTUBE_API_KEY")
}

func TestRun_PlaceholderCredential(t *testing.T) {
	isolate(t)
	t.Setenv("YOUTUBE_API_KEY", "YOUR_YOUTUBE_API_KEY")

	code, stdout, stderr := execute("https://youtu.be/dQw4w9WgXcQ")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "missing API key, provide --key or set YOUTUBE_API_KEY")
}

func TestRun_ClipboardText(t *testing.T) {
	isolate(t)
	startAPI(t)
	t.Setenv("YOUTUBE_API_KEY", "secret")

	code, stdout, stderr := execute("--locale", "en", "https://youtu.be/dQw4w9WgXcQ")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "link: https://www.youtube.com/watch?v=dQw4w9WgXcQ\n"+
		"published-time: 2009-10-25\n"+
		"title: Never Gonna <Give>\n"+
		"description: 说明\n"+
		"like-count: 20\n"+
		"view-count: 1000\n"+
		"duration: 03:33\n", stdout)
}

func TestRun_JSON(t *testing.T) {
	isolate(t)
	startAPI(t)

	code, stdout, stderr := execute("--json", "--key", "secret", "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "说明")
	assert.Contains(t, stdout, "Never Gonna <Give>")
	assert.Contains(t, stdout, "\n  \"videoId\": \"dQw4w9WgXcQ\"")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &record))
	assert.Equal(t, "structured-api", record["source"])
	assert.Equal(t, float64(213), record["durationSeconds"])
	assert.Contains(t, record, "channelTitle")
}

func TestRun_FallbackUnavailable(t *testing.T) {
	isolate(t)
	t.Setenv("YTDLP_PATH", filepath.Join(t.TempDir(), "missing-yt-dlp"))

	code, _, stderr := execute("--fallback", "https://youtu.be/dQw4w9WgXcQ")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "fallback extractor unavailable")
}
