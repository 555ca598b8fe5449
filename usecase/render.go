package usecase

import (
	"strconv"
	"strings"

	"yt-analyze/domain/model"
)

// Labels names the seven clipboard lines, in output order
type Labels struct {
	Link          string
	PublishedTime string
	Title         string
	Description   string
	LikeCount     string
	ViewCount     string
	Duration      string
}

var (
	LabelsZH = Labels{
		Link:          "链接",
		PublishedTime: "发布时间",
		Title:         "标题",
		Description:   "描述",
		LikeCount:     "点赞数",
		ViewCount:     "观看次数",
		Duration:      "时长",
	}
	LabelsEN = Labels{
		Link:          "link",
		PublishedTime: "published-time",
		Title:         "title",
		Description:   "description",
		LikeCount:     "like-count",
		ViewCount:     "view-count",
		Duration:      "duration",
	}
)

// LabelsFor maps a locale ("zh", "en") to its labels; unknown locales get LabelsZH
func LabelsFor(locale string) Labels {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "en", "en-us", "en_us", "english":
		return LabelsEN
	default:
		return LabelsZH
	}
}

// RenderClipboardText renders meta with the default labels
func RenderClipboardText(meta *model.VideoMetadata) string {
	return RenderClipboardTextWithLabels(meta, LabelsZH)
}

// RenderClipboardTextWithLabels renders one "label: value" line per field in fixed order.
// Missing values render empty; the result has no trailing newline.
func RenderClipboardTextWithLabels(meta *model.VideoMetadata, labels Labels) string {
	if meta == nil {
		meta = &model.VideoMetadata{}
	}

	published := model.StringValue(meta.PublishedDate)
	if published == "" {
		published = model.StringValue(meta.PublishedAt)
	}
	duration := model.StringValue(meta.DurationText)
	if duration == "" {
		duration = formatCount(meta.DurationSeconds)
	}

	fields := []struct {
		label string
		value string
	}{
		{labels.Link, meta.URL},
		{labels.PublishedTime, published},
		{labels.Title, model.StringValue(meta.Title)},
		{labels.Description, model.StringValue(meta.Description)},
		{labels.LikeCount, formatCount(meta.LikeCount)},
		{labels.ViewCount, formatCount(meta.ViewCount)},
		{labels.Duration, duration},
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, f.label+": "+f.value)
	}
	return strings.Join(lines, "\n")
}

func formatCount(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
