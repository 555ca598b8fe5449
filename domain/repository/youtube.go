package repository

import (
	"context"

	"yt-analyze/domain/model"
)

// IMetadataSource is implemented by every adapter that can produce a canonical metadata record.
// The meaning of input depends on the adapter: a video ID for the structured API, a raw URL for the scraper.
type IMetadataSource interface {
	Source() model.Source
	Fetch(ctx context.Context, input string) (*model.VideoMetadata, error)
}

// MetadataSourceFactory builds a structured-API source for a credential supplied at call time
type MetadataSourceFactory func(ctx context.Context, credential string) (IMetadataSource, error)

// IPageExtractor returns the raw info record for a page. cookieFile may be empty.
type IPageExtractor interface {
	ExtractInfo(ctx context.Context, url string, cookieFile string) (*model.PageInfo, error)
}
