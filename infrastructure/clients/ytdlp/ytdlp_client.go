package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"os/exec"
	"strings"

	"yt-analyze/domain/model"
	"yt-analyze/domain/repository"
	"yt-analyze/infrastructure/logger"
)

// DefaultBinary is looked up on PATH when no explicit path is configured
const DefaultBinary = "yt-dlp"

var ErrNotInstalled = errors.New("ytdlp: yt-dlp not installed")

// Client runs yt-dlp to extract the info dictionary of a single page without downloading media
type Client struct {
	binary string
}

// NewClient returns a page extractor that invokes binary (DefaultBinary when empty)
func NewClient(binary string) repository.IPageExtractor {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{binary: binary}
}

// Available reports whether binary (DefaultBinary when empty) can be executed
func Available(binary string) bool {
	if binary == "" {
		binary = DefaultBinary
	}
	_, err := exec.LookPath(binary)
	return err == nil
}

func (c *Client) ExtractInfo(ctx context.Context, url string, cookieFile string) (*model.PageInfo, error) {
	args := []string{
		"--dump-json",
		"--skip-download",
		"--no-warnings",
		"--no-check-certificate",
		"--no-playlist",
	}
	if cookieFile != "" {
		if _, err := os.Stat(cookieFile); err == nil {
			args = append(args, "--cookies", cookieFile)
		} else {
			logger.GetLogger().WithField("cookieFile", cookieFile).Warn("Cookie file not found, extracting without cookies")
		}
	}
	args = append(args, "--", url)

	cmd := exec.CommandContext(ctx, c.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrNotInstalled, err)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("yt-dlp failed: %w", err)
		}
		return nil, fmt.Errorf("yt-dlp failed: %w: %s", err, msg)
	}

	return DecodeInfo(stdout.Bytes())
}

// DecodeInfo reads the first JSON document printed by yt-dlp.
// Fields with unexpected types are left nil instead of failing the whole record.
func DecodeInfo(raw []byte) (*model.PageInfo, error) {
	line := bytes.TrimSpace(raw)
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	var m map[string]any
	if err := json.Unmarshal(line, &m); err != nil {
		return nil, fmt.Errorf("decode yt-dlp output: %w", err)
	}

	return &model.PageInfo{
		ID:          stringField(m, "id"),
		WebpageURL:  stringField(m, "webpage_url"),
		Title:       stringField(m, "title"),
		Description: stringField(m, "description"),
		UploadDate:  stringField(m, "upload_date"),
		Duration:    floatField(m, "duration"),
		ViewCount:   intField(m, "view_count"),
		LikeCount:   intField(m, "like_count"),
		Uploader:    stringField(m, "uploader"),
	}, nil
}

func stringField(m map[string]any, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func floatField(m map[string]any, key string) *float64 {
	if v, ok := m[key].(float64); ok {
		return &v
	}
	return nil
}

func intField(m map[string]any, key string) *int64 {
	v, ok := m[key].(float64)
	if !ok || v < 0 || math.IsInf(v, 0) {
		return nil
	}
	c := int64(v)
	return &c
}
