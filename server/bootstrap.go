package server

import (
	"context"

	"yt-analyze/domain/repository"
	youtubeclient "yt-analyze/infrastructure/clients/youtube"
	"yt-analyze/infrastructure/clients/ytdlp"
	"yt-analyze/infrastructure/configuration"
	"yt-analyze/infrastructure/logger"
	"yt-analyze/usecase"
)

// NewMetadataUsecase wires the metadata sources available under cfg.
// The structured API is used only with a configured key; the fallback only when yt-dlp is installed.
func NewMetadataUsecase(ctx context.Context, cfg *configuration.Config) usecase.IMetadataUsecase {
	factory := youtubeclient.NewClientFactory(cfg.YouTube.Timeout(), cfg.YouTube.Endpoint)

	var primary repository.IMetadataSource
	if cfg.YouTube.HasAPIKey() {
		client, err := factory(ctx, cfg.YouTube.Credential())
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to initialize YouTube client - structured API disabled")
		} else {
			primary = client
		}
	}

	var fallback repository.IMetadataSource
	if ytdlp.Available(cfg.Ytdlp.Path) {
		fallback = ytdlp.NewSource(ytdlp.NewClient(cfg.Ytdlp.Path), cfg.Ytdlp.CookieFile)
	} else {
		logger.GetLogger().WithField("binary", cfg.Ytdlp.Path).Warn("yt-dlp not found - page extraction fallback disabled")
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"structuredAPI": primary != nil,
		"fallback":      fallback != nil,
		"locale":        cfg.Render.Locale,
	}).Info("Metadata sources initialized")

	return usecase.NewMetadataUsecaseWithLabels(primary, fallback, factory, usecase.LabelsFor(cfg.Render.Locale))
}
