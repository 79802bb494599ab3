package metadata

import (
	"context"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/feral-file/ff-editions/internal/adapter"
	"github.com/feral-file/ff-editions/internal/logger"
)

// sniffBytes is enough for mimetype to recognise every common media container
const sniffBytes = 3072

// detectMimeType downloads the head of the media and detects its MIME type.
// Returns an empty string when the media cannot be fetched or recognised.
func detectMimeType(ctx context.Context, httpClient adapter.HTTPClient, mediaURL string) string {
	if mediaURL == "" {
		return ""
	}

	content, err := httpClient.GetPartialContent(ctx, mediaURL, sniffBytes)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to download content for mime type detection",
			zap.String("url", mediaURL),
			zap.Error(err))
		return ""
	}

	mtype := mimetype.Detect(content)
	if mtype == nil || mtype.Is("application/octet-stream") {
		logger.WarnCtx(ctx, "Failed to detect mime type", zap.String("url", mediaURL))
		return ""
	}

	logger.DebugCtx(ctx, "Detected mime type",
		zap.String("url", mediaURL),
		zap.String("mimeType", mtype.String()))

	// Drop parameters such as charset
	return strings.SplitN(mtype.String(), ";", 2)[0]
}

// categoryForMimeType maps a MIME type to the metadata properties.category value
func categoryForMimeType(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return "video"
	case strings.HasPrefix(mimeType, "audio/"):
		return "audio"
	case strings.HasPrefix(mimeType, "model/"):
		return "vr"
	case mimeType == "text/html":
		return "html"
	default:
		return "image"
	}
}
