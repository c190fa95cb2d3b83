package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/concursalia/filingdocs/internal/application/usecase"
	"github.com/concursalia/filingdocs/internal/compose"
	"github.com/concursalia/filingdocs/internal/domain/port"
	"github.com/concursalia/filingdocs/internal/domain/valueobject"
	"github.com/concursalia/filingdocs/internal/infrastructure/config"
	"github.com/concursalia/filingdocs/internal/infrastructure/memory"
	"github.com/concursalia/filingdocs/internal/infrastructure/sqlite"
	"github.com/concursalia/filingdocs/internal/presentation/rest"
	"github.com/concursalia/filingdocs/internal/render"
	"github.com/concursalia/filingdocs/internal/render/docx"
	"github.com/concursalia/filingdocs/internal/render/pdf"
	"github.com/concursalia/filingdocs/pkg/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Local overrides; absence is not an error.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.Init(cfg.Log)

	logger.Info("starting filingdocs",
		"http_port", cfg.HTTPPort,
		"storage", cfg.Storage.Driver,
	)

	// Filing store.
	var (
		repo   port.FilingRepository
		pinger rest.Pinger
	)
	switch cfg.Storage.Driver {
	case "memory":
		repo = memory.NewFilingRepository()
	default:
		db, err := sqlite.Open(cfg.Storage.Path)
		if err != nil {
			logger.Error("failed to open filing store", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		repo = sqlite.NewFilingRepository(db)
		pinger = db
		logger.Info("filing store ready", "path", cfg.Storage.Path)
	}

	// Rendering backends.
	if cfg.Fonts.Dir != "" && !cfg.Fonts.Available() {
		logger.Warn("configured font asset not found, PDF output will use core fonts",
			"path", cfg.Fonts.TTFPath())
	}
	renderers := map[string]render.Renderer{
		valueobject.FormatPDF.String():  pdf.New(cfg.Fonts, logger),
		valueobject.FormatDOCX.String(): docx.New(logger),
	}

	// Wire use cases.
	createUC := usecase.NewCreateFiling(repo, logger)
	generateUC := usecase.NewGenerateDocument(repo, compose.NewBuilder(), renderers, logger)

	// HTTP server.
	router := rest.NewRouter(
		rest.NewHealthHandler(pinger, logger),
		rest.NewDocumentHandler(createUC, generateUC, logger),
	)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("filingdocs stopped")
}
