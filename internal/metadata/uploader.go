package metadata

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudflare/cloudflare-go"
	"go.uber.org/zap"

	"github.com/feral-file/ff-editions/internal/adapter"
	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/logger"
)

// UploaderConfig holds the Workers KV location of the metadata documents
type UploaderConfig struct {
	AccountID     string
	NamespaceID   string
	PublicBaseURL string
}

// Uploader stores metadata documents and returns their public URL
//
//go:generate mockgen -source=uploader.go -destination=../mocks/metadata_uploader.go -package=mocks -mock_names=Uploader=MockMetadataUploader
type Uploader interface {
	// Upload stores the metadata of a post. The URL only depends on the post,
	// so uploading the same post twice overwrites the same document.
	Upload(ctx context.Context, postID string, data []byte) (string, error)
}

type kvUploader struct {
	cloudflare adapter.CloudflareClient
	config     UploaderConfig
}

// NewUploader creates a new uploader backed by Cloudflare Workers KV
func NewUploader(cf adapter.CloudflareClient, cfg UploaderConfig) Uploader {
	cfg.PublicBaseURL = strings.TrimSuffix(cfg.PublicBaseURL, "/")
	return &kvUploader{cloudflare: cf, config: cfg}
}

// MetadataKey is the KV key of the metadata document of a post
func MetadataKey(postID string) string {
	return fmt.Sprintf("editions/%s.json", postID)
}

func (u *kvUploader) Upload(ctx context.Context, postID string, data []byte) (string, error) {
	key := MetadataKey(postID)

	_, err := u.cloudflare.WriteWorkersKVEntry(ctx,
		cloudflare.AccountIdentifier(u.config.AccountID),
		cloudflare.WriteWorkersKVEntryParams{
			NamespaceID: u.config.NamespaceID,
			Key:         key,
			Value:       data,
		})
	if err != nil {
		return "", domain.NewTransientError(fmt.Errorf("failed to write metadata to KV: %w", err))
	}

	url := fmt.Sprintf("%s/%s", u.config.PublicBaseURL, key)
	logger.InfoCtx(ctx, "Uploaded edition metadata", zap.String("post_id", postID), zap.String("url", url))

	return url, nil
}
