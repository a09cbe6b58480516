package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/psdahs/alumni/internal/config"
	"github.com/psdahs/alumni/internal/storage"
	"github.com/psdahs/alumni/internal/upload"
)

type remoteStore struct{ storage.Storage }

func (remoteStore) PublicURL(key string) string { return "https://bucket.example.org" + key }

func TestRouterServesLocalImages(t *testing.T) {
	root := t.TempDir()
	policy := upload.NewPolicy(upload.Options{PublicDir: root})
	_, err := policy.EnsureDirectories(nil)
	require.NoError(t, err)

	require.NoError(t, storage.NewLocalStorage(policy).Save(context.Background(),
		"/images/class-groups/thumbnails/t.png", strings.NewReader("thumb"), 5, "image/png"))
	require.FileExists(t, filepath.Join(root, "images", "class-groups", "thumbnails", "t.png"))

	h := newRouter(&config.Config{JWTSecret: "s"}, policy, storage.NewLocalStorage(policy), zap.NewNop().Sugar())
	srv := httptest.NewServer(h)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/images/class-groups/thumbnails/t.png")
	require.NoError(t, err)
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "thumb", string(body))

	res2, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	res2.Body.Close()
	assert.Equal(t, http.StatusOK, res2.StatusCode)
}

func TestRouterSkipsStaticForRemoteStore(t *testing.T) {
	root := t.TempDir()
	policy := upload.NewPolicy(upload.Options{PublicDir: root})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "images", "x.png"), []byte("x"), 0o644))

	h := newRouter(&config.Config{JWTSecret: "s"}, policy, remoteStore{}, zap.NewNop().Sugar())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/x.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/images/policy", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterHidesDirectoriesAndTempFiles(t *testing.T) {
	root := t.TempDir()
	policy := upload.NewPolicy(upload.Options{PublicDir: root})
	_, err := policy.EnsureDirectories(nil)
	require.NoError(t, err)

	store := storage.NewLocalStorage(policy)
	require.NoError(t, store.Save(context.Background(),
		"/images/class-groups/banners/4b1c.png", strings.NewReader("banner"), 6, "image/png"))
	banners := filepath.Join(root, "images", "class-groups", "banners")
	require.NoError(t, os.WriteFile(filepath.Join(banners, ".upload-123"), []byte("partial"), 0o644))

	h := newRouter(&config.Config{JWTSecret: "s"}, policy, store, zap.NewNop().Sugar())

	for _, target := range []string{
		"/images/",
		"/images/class-groups/",
		"/images/class-groups/banners/",
		"/images/class-groups/banners",
		"/images/class-groups/banners/.upload-123",
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.NotContains(t, rec.Body.String(), "4b1c.png", target)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/class-groups/banners/4b1c.png", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "banner", rec.Body.String())
}

func TestRouterServesSwaggerDoc(t *testing.T) {
	policy := upload.NewPolicy(upload.Options{PublicDir: t.TempDir()})
	h := newRouter(&config.Config{JWTSecret: "s"}, policy, remoteStore{}, zap.NewNop().Sugar())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/images/{category}")
	assert.Contains(t, rec.Body.String(), "Alumni Images API")
}
