package dto

import "yt-analyze/domain/model"

// AnalyzeRequest is the body accepted by POST /api/analyze
type AnalyzeRequest struct {
	URL string `json:"url" form:"url" binding:"required"`
}

// AnalyzeResult carries the canonical record together with its clipboard rendering
type AnalyzeResult struct {
	Data *model.VideoMetadata
	Text string
}

// AnalyzeResponse is the envelope returned by the analyze endpoints
type AnalyzeResponse struct {
	OK    bool                 `json:"ok"`
	Data  *model.VideoMetadata `json:"data,omitempty"`
	Text  string               `json:"text,omitempty"`
	Error string               `json:"error,omitempty"`
}

// APIInfoResponse describes the available endpoints
type APIInfoResponse struct {
	OK        bool                `json:"ok"`
	Message   string              `json:"message"`
	Endpoints map[string][]string `json:"endpoints"`
}
