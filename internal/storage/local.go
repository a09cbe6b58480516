package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/psdahs/alumni/internal/upload"
)

// LocalStorage implements Storage on the local filesystem, rooted at the
// policy's public directory.
type LocalStorage struct {
	policy *upload.Policy
}

// NewLocalStorage returns a LocalStorage resolving keys through policy.
func NewLocalStorage(policy *upload.Policy) *LocalStorage {
	return &LocalStorage{policy: policy}
}

// Save writes reader to a temp file next to the target and renames it into
// place, so readers never see a partial image.
func (s *LocalStorage) Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	dst, err := s.policy.FullPath(key)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", key, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create parent of %q: %w", key, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	written, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: reader})
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	if size >= 0 && written != size {
		return fmt.Errorf("write %q: wrote %d bytes, expected %d", key, written, size)
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("move %q into place: %w", key, err)
	}
	return nil
}

// Delete removes the file at key.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	dst, err := s.policy.FullPath(key)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", key, err)
	}
	if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// PublicURL returns the CDN URL when one is configured, else the key itself,
// which the API serves from the public directory.
func (s *LocalStorage) PublicURL(key string) string {
	return s.policy.ImageURL(key)
}

// ctxReader stops a copy once ctx is cancelled.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
