// Package storage persists uploaded agreement documents.
package storage

import (
	"context"
	"fmt"
	"io"

	"dealbook/internal/config"
)

// Supported values of STORAGE_PROVIDER.
const (
	ProviderLocal = "local"
	ProviderGCS   = "gcs"
)

// Store saves and removes objects addressed by slash-separated keys.
type Store interface {
	Save(ctx context.Context, key string, r io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// New returns the store selected by cfg.StorageProvider.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageProvider {
	case ProviderLocal:
		return NewLocalStore(cfg.MediaRoot, "/media/")
	case ProviderGCS:
		if cfg.GCSBucket == "" {
			return nil, fmt.Errorf("GCS_BUCKET is required for the %s storage provider", ProviderGCS)
		}
		return NewGCSStore(ctx, cfg.GCSBucket)
	}
	return nil, fmt.Errorf("unsupported STORAGE_PROVIDER %q", cfg.StorageProvider)
}
