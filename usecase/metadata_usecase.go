package usecase

import (
	"context"
	"errors"
	"strings"

	"yt-analyze/domain/dto"
	"yt-analyze/domain/model"
	"yt-analyze/domain/repository"
	"yt-analyze/infrastructure/logger"
	"yt-analyze/infrastructure/utils"
)

// IMetadataUsecase defines the two resolution policies and their rendered variants
type IMetadataUsecase interface {
	// Resolve tries the structured API when possible and falls back to scraping
	Resolve(ctx context.Context, rawURL string) (*model.VideoMetadata, error)
	// FetchStrict requires an extractable ID and a credential, and never falls back
	FetchStrict(ctx context.Context, rawURL, credential string) (*model.VideoMetadata, error)

	Analyze(ctx context.Context, rawURL string) (*dto.AnalyzeResult, error)
	AnalyzeStrict(ctx context.Context, rawURL, credential string) (*dto.AnalyzeResult, error)
}

// MetadataUsecase selects a metadata source per request. It holds no per-request state.
type MetadataUsecase struct {
	primary    repository.IMetadataSource // nil when no credential is configured
	fallback   repository.IMetadataSource // nil when the page extractor is unavailable
	newPrimary repository.MetadataSourceFactory
	labels     Labels
}

// NewMetadataUsecase creates a use case. Pass nil for a source that is not available in this process.
func NewMetadataUsecase(primary, fallback repository.IMetadataSource, newPrimary repository.MetadataSourceFactory) IMetadataUsecase {
	return &MetadataUsecase{
		primary:    primary,
		fallback:   fallback,
		newPrimary: newPrimary,
		labels:     LabelsZH,
	}
}

// NewMetadataUsecaseWithLabels creates a use case rendering with the given labels
func NewMetadataUsecaseWithLabels(primary, fallback repository.IMetadataSource, newPrimary repository.MetadataSourceFactory, labels Labels) IMetadataUsecase {
	return (&MetadataUsecase{primary: primary, fallback: fallback, newPrimary: newPrimary}).WithLabels(labels)
}

// WithLabels sets the clipboard labels (fluent)
func (u *MetadataUsecase) WithLabels(labels Labels) *MetadataUsecase {
	u.labels = labels
	return u
}

// Resolve returns metadata for rawURL. Structured API failures of kind NotFound or
// UpstreamError are swallowed and the scraper is tried; only the scraper's error reaches the caller.
func (u *MetadataUsecase) Resolve(ctx context.Context, rawURL string) (*model.VideoMetadata, error) {
	videoID, ok := utils.ExtractVideoID(rawURL)

	primaryFailed := false
	if u.primary != nil && ok {
		meta, err := u.primary.Fetch(ctx, videoID)
		if err == nil {
			return meta, nil
		}
		if !isSuppressible(err) {
			return nil, err
		}
		primaryFailed = true
		logger.GetLogger().
			WithField("videoId", videoID).
			WithField("error", err).
			Warn("Structured API lookup failed, falling back to page extraction")
	}

	var (
		meta *model.VideoMetadata
		err  error
	)
	if u.fallback == nil {
		err = model.NewFetchError(model.KindUpstream, model.SourceFallbackScrape, nil, "fallback extractor unavailable")
	} else {
		meta, err = u.fallback.Fetch(ctx, rawURL)
	}
	if err != nil {
		if primaryFailed {
			return nil, &model.FetchError{Kind: model.KindBothSourcesFailed, Source: model.SourceFallbackScrape, Err: err}
		}
		return nil, err
	}
	return meta, nil
}

// FetchStrict resolves rawURL through the structured API only. Both the ID and the
// credential are checked before any client is created.
func (u *MetadataUsecase) FetchStrict(ctx context.Context, rawURL, credential string) (*model.VideoMetadata, error) {
	videoID, ok := utils.ExtractVideoID(rawURL)
	if !ok {
		return nil, model.NewFetchError(model.KindExtractionFailed, "", nil, "unable to parse video ID from URL")
	}
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, model.NewFetchError(model.KindMissingCredential, model.SourceStructuredAPI, nil, "missing API key, provide --key or set YOUTUBE_API_KEY")
	}
	if u.newPrimary == nil {
		return nil, model.NewFetchError(model.KindUpstream, model.SourceStructuredAPI, nil, "structured API client not configured")
	}

	source, err := u.newPrimary(ctx, credential)
	if err != nil {
		return nil, err
	}
	return source.Fetch(ctx, videoID)
}

// Analyze resolves rawURL and renders the clipboard text
func (u *MetadataUsecase) Analyze(ctx context.Context, rawURL string) (*dto.AnalyzeResult, error) {
	meta, err := u.Resolve(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return &dto.AnalyzeResult{Data: meta, Text: RenderClipboardTextWithLabels(meta, u.labels)}, nil
}

// AnalyzeStrict is FetchStrict followed by rendering
func (u *MetadataUsecase) AnalyzeStrict(ctx context.Context, rawURL, credential string) (*dto.AnalyzeResult, error) {
	meta, err := u.FetchStrict(ctx, rawURL, credential)
	if err != nil {
		return nil, err
	}
	return &dto.AnalyzeResult{Data: meta, Text: RenderClipboardTextWithLabels(meta, u.labels)}, nil
}

func isSuppressible(err error) bool {
	return errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrUpstream)
}
