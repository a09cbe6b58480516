// Package storage defines where accepted images are written.
// Swap implementations by changing the concrete type injected at startup:
// LocalStorage writes beneath the public directory, MinioStorage talks to any
// S3-compatible provider (AWS S3, MinIO).
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/psdahs/alumni/internal/config"
	"github.com/psdahs/alumni/internal/upload"
)

// ErrUnsupportedProvider is returned by New for a provider with no backend.
var ErrUnsupportedProvider = errors.New("unsupported storage provider")

// Storage is the interface for saving and retrieving images.
// Keys are policy-relative paths such as "/images/class-groups/banners/x.png".
type Storage interface {
	// Save streams data to the store under the given key.
	Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Delete removes the object identified by key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
	// PublicURL constructs the browser-accessible URL for a given key.
	PublicURL(key string) string
}

// New picks the backend named by cfg.CDNProvider.
func New(ctx context.Context, cfg *config.Config, policy *upload.Policy) (Storage, error) {
	switch cfg.CDNProvider {
	case "", config.ProviderLocal:
		return NewLocalStorage(policy), nil
	case config.ProviderS3:
		return NewMinioStorage(ctx, MinioOptions{
			Endpoint:   cfg.S3.Endpoint,
			AccessKey:  cfg.S3.AccessKey,
			SecretKey:  cfg.S3.SecretKey,
			Bucket:     cfg.S3.Bucket,
			Region:     cfg.S3.Region,
			PublicBase: cfg.S3.PublicBase,
			UseSSL:     cfg.S3.UseSSL,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.CDNProvider)
	}
}
