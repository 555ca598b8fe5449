package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"yt-analyze/domain/model"
	"yt-analyze/domain/repository"
	"yt-analyze/infrastructure/logger"
	"yt-analyze/infrastructure/utils"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// DefaultTimeout bounds a single videos.list call
const DefaultTimeout = 15 * time.Second

var videoParts = []string{"snippet", "contentDetails", "statistics"}

// Client is the structured-API metadata source backed by the YouTube Data API v3
type Client struct {
	service *youtube.Service
}

// Config represents YouTube API configuration
type Config struct {
	APIKey   string        `json:"api_key"`
	Timeout  time.Duration `json:"timeout"`
	Endpoint string        `json:"endpoint"` // overrides the API base URL, e.g. for tests
}

// NewYouTubeClient creates a new YouTube API client in API key mode (read-only)
func NewYouTubeClient(ctx context.Context, config *Config) (repository.IMetadataSource, error) {
	if config == nil || config.APIKey == "" {
		return nil, model.NewFetchError(model.KindMissingCredential, model.SourceStructuredAPI, nil, "YouTube API key is required")
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// A custom HTTP client bypasses option.WithAPIKey, so the key is attached by the transport
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: &transport.APIKey{Key: config.APIKey, Transport: &bodyCapture{base: http.DefaultTransport}},
	}
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if config.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(config.Endpoint))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
	}
	return &Client{service: service}, nil
}

// NewClientFactory adapts NewYouTubeClient to repository.MetadataSourceFactory, keeping timeout and endpoint fixed
func NewClientFactory(timeout time.Duration, endpoint string) repository.MetadataSourceFactory {
	return func(ctx context.Context, credential string) (repository.IMetadataSource, error) {
		return NewYouTubeClient(ctx, &Config{APIKey: credential, Timeout: timeout, Endpoint: endpoint})
	}
}

func (c *Client) Source() model.Source { return model.SourceStructuredAPI }

// Fetch retrieves snippet, content details and statistics for a single video ID
func (c *Client) Fetch(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	logger.GetLogger().WithField("videoId", videoID).Debug("Fetching video metadata from YouTube Data API")

	raw := &bytes.Buffer{}
	ctx = context.WithValue(ctx, captureKey{}, raw)

	response, err := c.service.Videos.List(videoParts).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, classifyError(videoID, err)
	}
	if len(response.Items) == 0 {
		return nil, model.NewFetchError(model.KindNotFound, model.SourceStructuredAPI, nil, "no video found or not accessible: %s", videoID)
	}

	meta := convertToVideoMetadata(videoID, response.Items[0])
	meta.ViewCount, meta.LikeCount = countsFromRaw(raw.Bytes(), response.Items[0])
	return meta, nil
}

type captureKey struct{}

// bodyCapture copies the response body into the buffer carried by the request context, if any
type bodyCapture struct {
	base http.RoundTripper
}

func (b *bodyCapture) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := b.base.RoundTrip(req)
	buf, ok := req.Context().Value(captureKey{}).(*bytes.Buffer)
	if err != nil || !ok || resp.Body == nil {
		return resp, err
	}
	data, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}
	buf.Reset()
	buf.Write(data)
	resp.Body = io.NopCloser(bytes.NewReader(data))
	return resp, nil
}

// rawVideoList keeps the statistics counts as optional strings.
// The typed client decodes a missing count as 0, e.g. when a channel hides its likes.
type rawVideoList struct {
	Items []struct {
		Statistics *struct {
			ViewCount *string `json:"viewCount"`
			LikeCount *string `json:"likeCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// countsFromRaw returns view and like counts, nil for each count the response did not include
func countsFromRaw(raw []byte, video *youtube.Video) (views, likes *int64) {
	var list rawVideoList
	if err := json.Unmarshal(raw, &list); err != nil || len(list.Items) == 0 {
		logger.GetLogger().WithField("error", err).Debug("Raw statistics unavailable, using decoded counts")
		if video.Statistics == nil {
			return nil, nil
		}
		v, l := int64(video.Statistics.ViewCount), int64(video.Statistics.LikeCount)
		return &v, &l
	}
	stats := list.Items[0].Statistics
	if stats == nil {
		return nil, nil
	}
	return parseCount(stats.ViewCount), parseCount(stats.LikeCount)
}

func parseCount(s *string) *int64 {
	if s == nil {
		return nil
	}
	n, err := strconv.ParseInt(*s, 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func classifyError(videoID string, err error) error {
	fe := model.NewFetchError(model.KindUpstream, model.SourceStructuredAPI, err, "failed to get video details for %s: %v", videoID, err)
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		fe.Status = apiErr.Code
	}
	return fe
}

func convertToVideoMetadata(videoID string, video *youtube.Video) *model.VideoMetadata {
	meta := &model.VideoMetadata{
		VideoID: model.StringPtr(videoID),
		URL:     utils.WatchURL(videoID),
		Source:  model.SourceStructuredAPI,
	}

	if video.Snippet != nil {
		meta.Title = model.String(video.Snippet.Title)
		meta.Description = model.String(video.Snippet.Description)
		meta.PublishedAt = model.StringPtr(video.Snippet.PublishedAt)
		meta.PublishedDate = utils.ISOTimestampToDateOnly(meta.PublishedAt)
		meta.ChannelTitle = model.String(video.Snippet.ChannelTitle)
	}

	if video.ContentDetails != nil {
		meta.DurationSeconds = utils.ISODurationToSeconds(video.ContentDetails.Duration)
		meta.DurationText = utils.SecondsToClock(meta.DurationSeconds)
	}

	return meta
}
