//	@title			Alumni Images API
//	@version		1.0
//	@description	Class-group image uploads for the alumni network.
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: **Bearer {token}**

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/psdahs/alumni/internal/config"
	"github.com/psdahs/alumni/internal/logging"
	"github.com/psdahs/alumni/internal/storage"
	"github.com/psdahs/alumni/internal/upload"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	policy := upload.NewPolicy(upload.Options{
		PublicDir: cfg.PublicDir,
		CDN:       upload.CDN{Enabled: cfg.CDNEnabled, BaseURL: cfg.CDNBaseURL},
	})
	for _, issue := range policy.Drift() {
		logger.Warnw("upload policy drift", "issue", issue)
	}

	if _, err := policy.EnsureDirectories(logger); err != nil {
		var perr *upload.ProvisioningError
		if errors.As(err, &perr) {
			logger.Fatalw("image directory provisioning failed", "category", perr.Category, "path", perr.Path, "error", perr.Err)
		}
		logger.Fatalw("image directory provisioning failed", "error", err)
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := storage.New(initCtx, cfg, policy)
	cancelInit()
	if err != nil {
		logger.Fatalw("image storage init failed", "provider", cfg.CDNProvider, "error", err)
	}

	r := newRouter(cfg, policy, store, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Infow("server listening",
			"addr", srv.Addr,
			"env", cfg.AppEnv,
			"provider", cfg.CDNProvider,
			"publicDir", policy.PublicDir(),
			"maxUpload", humanize.IBytes(uint64(policy.MaxFileSize())),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("server error", "error", err)
		}
	}()

	<-quit
	logger.Info("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalw("forced shutdown", "error", err)
	}

	logger.Info("server stopped")
}
