package model

// Source tags which adapter produced a VideoMetadata record
type Source string

const (
	SourceStructuredAPI  Source = "structured-api"
	SourceFallbackScrape Source = "fallback-scrape"
)

// VideoMetadata is the canonical record every metadata source converges on.
// Optional fields are nil when the upstream did not report them and serialize as null.
type VideoMetadata struct {
	VideoID         *string `json:"videoId"`
	URL             string  `json:"url"`
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	PublishedAt     *string `json:"publishedAt"`   // ISO8601
	PublishedDate   *string `json:"publishedDate"` // YYYY-MM-DD
	DurationSeconds *int64  `json:"durationSeconds"`
	DurationText    *string `json:"durationText"`
	ViewCount       *int64  `json:"viewCount"`
	LikeCount       *int64  `json:"likeCount"`
	ChannelTitle    *string `json:"channelTitle"`
	Source          Source  `json:"source"`
}

// PageInfo is the raw record returned by the page-extraction collaborator.
// Field names follow the extractor's own info dictionary.
type PageInfo struct {
	ID          *string  `json:"id"`
	WebpageURL  *string  `json:"webpage_url"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	UploadDate  *string  `json:"upload_date"` // YYYYMMDD
	Duration    *float64 `json:"duration"`    // seconds
	ViewCount   *int64   `json:"view_count"`
	LikeCount   *int64   `json:"like_count"`
	Uploader    *string  `json:"uploader"`
}

// String returns a pointer to s.
func String(s string) *string { return &s }

// StringPtr returns nil for an empty string, otherwise a pointer to s.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
