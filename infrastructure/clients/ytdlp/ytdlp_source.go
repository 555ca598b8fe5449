package ytdlp

import (
	"context"

	"yt-analyze/domain/model"
	"yt-analyze/domain/repository"
	"yt-analyze/infrastructure/logger"
	"yt-analyze/infrastructure/utils"
)

// Source is the fallback-scrape metadata source. It needs only the raw URL.
type Source struct {
	extractor  repository.IPageExtractor
	cookieFile string
}

// NewSource wraps a page extractor; cookieFile may be empty
func NewSource(extractor repository.IPageExtractor, cookieFile string) repository.IMetadataSource {
	return &Source{extractor: extractor, cookieFile: cookieFile}
}

func (s *Source) Source() model.Source { return model.SourceFallbackScrape }

// Fetch extracts the page at rawURL and maps it to the canonical record
func (s *Source) Fetch(ctx context.Context, rawURL string) (*model.VideoMetadata, error) {
	logger.GetLogger().WithField("url", rawURL).Debug("Extracting video metadata with yt-dlp")

	info, err := s.extractor.ExtractInfo(ctx, rawURL, s.cookieFile)
	if err != nil {
		return nil, &model.FetchError{Kind: model.KindUpstream, Source: model.SourceFallbackScrape, Err: err}
	}
	if info == nil {
		info = &model.PageInfo{}
	}

	uploadDate := model.StringValue(info.UploadDate)
	durationSeconds := utils.FloatSecondsToInt(info.Duration)

	url := model.StringValue(info.WebpageURL)
	if url == "" {
		url = rawURL
	}

	return &model.VideoMetadata{
		VideoID:         info.ID,
		URL:             url,
		Title:           info.Title,
		Description:     info.Description,
		PublishedAt:     utils.CompactDateToISO(uploadDate),
		PublishedDate:   utils.CompactDateToDateOnly(uploadDate),
		DurationSeconds: durationSeconds,
		DurationText:    utils.SecondsToClock(durationSeconds),
		ViewCount:       info.ViewCount,
		LikeCount:       info.LikeCount,
		ChannelTitle:    info.Uploader,
		Source:          model.SourceFallbackScrape,
	}, nil
}
