package http

import (
	"net/http"
	"strings"

	"yt-analyze/domain/dto"
	"yt-analyze/infrastructure/logger"
	"yt-analyze/usecase"

	"github.com/gin-gonic/gin"
)

// IAnalyzeHandler defines the HTTP handlers for video analysis
type IAnalyzeHandler interface {
	Analyze(ctx *gin.Context)
	Info(ctx *gin.Context)
	Healthz(ctx *gin.Context)
}

// AnalyzeHandler implements IAnalyzeHandler
type AnalyzeHandler struct {
	metadataUsecase usecase.IMetadataUsecase
}

// NewAnalyzeHandler creates a new analyze handler instance
func NewAnalyzeHandler(metadataUsecase usecase.IMetadataUsecase) IAnalyzeHandler {
	return &AnalyzeHandler{
		metadataUsecase: metadataUsecase,
	}
}

// Analyze handles POST /api/analyze (and its aliases)
func (h *AnalyzeHandler) Analyze(ctx *gin.Context) {
	var req dto.AnalyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.AnalyzeResponse{OK: false, Error: "invalid request body: url is required"})
		return
	}
	rawURL := strings.TrimSpace(req.URL)

	result, err := h.metadataUsecase.Analyze(ctx.Request.Context(), rawURL)
	if err != nil {
		logger.GetLogger().
			WithField("url", rawURL).
			WithField("error", err).
			Warn("Analyze request failed")
		ctx.JSON(http.StatusBadRequest, dto.AnalyzeResponse{OK: false, Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, dto.AnalyzeResponse{OK: true, Data: result.Data, Text: result.Text})
}

// Info handles GET /api
func (h *AnalyzeHandler) Info(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIInfoResponse{
		OK:        true,
		Message:   "Use POST /api/analyze",
		Endpoints: map[string][]string{http.MethodPost: {"/api/analyze"}},
	})
}

// Healthz returns OK for health checks
func (h *AnalyzeHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
