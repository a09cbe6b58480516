package main

import (
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/psdahs/alumni/internal/config"
	"github.com/psdahs/alumni/internal/media"
	appMiddleware "github.com/psdahs/alumni/internal/middleware"
	"github.com/psdahs/alumni/internal/storage"
	"github.com/psdahs/alumni/internal/upload"

	_ "github.com/psdahs/alumni/docs/swagger"
)

func newRouter(cfg *config.Config, policy *upload.Policy, store storage.Storage, logger *zap.SugaredLogger) http.Handler {
	// Wire dependencies: policy → storage → handler
	mediaHandler := media.NewHandler(policy, store, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Locally stored images; with a CDN or object storage in front these are
	// fetched from there instead.
	if _, isLocal := store.(*storage.LocalStorage); isLocal {
		imagesDir := imageFS{http.Dir(filepath.Join(policy.PublicDir(), "images"))}
		r.Handle("/images/*", http.StripPrefix("/images", http.FileServer(imagesDir)))
	}

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/images", func(r chi.Router) {
			mediaHandler.Routes(r, appMiddleware.RequireAuth(cfg.JWTSecret))
		})
	})

	return r
}

// imageFS serves stored images only: directories and dot-files (including
// in-flight ".upload-*" temp files) look absent.
type imageFS struct {
	root http.FileSystem
}

func (f imageFS) Open(name string) (http.File, error) {
	for _, seg := range strings.Split(path.Clean("/"+name), "/") {
		if strings.HasPrefix(seg, ".") {
			return nil, fs.ErrNotExist
		}
	}

	file, err := f.root.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
