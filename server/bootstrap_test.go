package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yt-analyze/domain/model"
	"yt-analyze/infrastructure/configuration"
	"yt-analyze/server"
)

const videoResponse = `{"items":[{"id":"dQw4w9WgXcQ","snippet":{"title":"Never Gonna","publishedAt":"2009-10-25T06:57:33Z"},"contentDetails":{"duration":"PT3M33S"},"statistics":{"viewCount":"10","likeCount":"2"}}]}`

func testConfig(t *testing.T, apiKey, endpoint string) *configuration.Config {
	return &configuration.Config{
		YouTube: configuration.YouTube{APIKey: apiKey, TimeoutSeconds: 2, Endpoint: endpoint},
		Ytdlp:   configuration.Ytdlp{Path: filepath.Join(t.TempDir(), "no-such-yt-dlp")},
		Render:  configuration.Render{Locale: "en"},
	}
}

func TestNewMetadataUsecase_StructuredAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(videoResponse))
	}))
	defer srv.Close()

	uc := server.NewMetadataUsecase(context.Background(), testConfig(t, "key", srv.URL+"/"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := uc.Analyze(ctx, "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, model.SourceStructuredAPI, result.Data.Source)
	assert.Equal(t, "2009-10-25", model.StringValue(result.Data.PublishedDate))
	assert.Equal(t, "03:33", model.StringValue(result.Data.DurationText))
	assert.Contains(t, result.Text, "title: Never Gonna")
	assert.Contains(t, result.Text, "duration: 03:33")
}

func TestNewMetadataUsecase_NothingAvailable(t *testing.T) {
	uc := server.NewMetadataUsecase(context.Background(), testConfig(t, "", ""))

	_, err := uc.Resolve(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUpstream))
	assert.Equal(t, "fallback extractor unavailable", err.Error())
}

func TestNewMetadataUsecase_APIFailureWithoutFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	uc := server.NewMetadataUsecase(context.Background(), testConfig(t, "key", srv.URL+"/"))

	_, err := uc.Resolve(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.Error(t, err)
	assert.Equal(t, model.KindBothSourcesFailed, model.KindOf(err))
}
