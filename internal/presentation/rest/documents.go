// Package rest exposes filing ingestion and document generation over HTTP.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/concursalia/filingdocs/internal/application/dto"
	"github.com/concursalia/filingdocs/internal/application/usecase"
	"github.com/concursalia/filingdocs/internal/domain/port"
	"github.com/concursalia/filingdocs/internal/domain/valueobject"
)

// DocumentHandler serves the filing and document-generation endpoints.
type DocumentHandler struct {
	create   *usecase.CreateFiling
	generate *usecase.GenerateDocument
	logger   *slog.Logger
}

func NewDocumentHandler(
	create *usecase.CreateFiling,
	generate *usecase.GenerateDocument,
	logger *slog.Logger,
) *DocumentHandler {
	return &DocumentHandler{create: create, generate: generate, logger: logger}
}

// RegisterRoutes attaches the API routes to the given router.
func (h *DocumentHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/v1/filings", h.createFiling)
	r.Get("/api/v1/filings/{id}/document", h.generateDocument)
}

func (h *DocumentHandler) createFiling(w http.ResponseWriter, r *http.Request) {
	var payload dto.FilingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decode payload: %v", err))
		return
	}

	id, err := h.create.Execute(r.Context(), payload)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPayload) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("filing ingestion failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not store filing")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *DocumentHandler) generateDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "filing id must be a UUID")
		return
	}

	raw := r.URL.Query().Get("format")
	if raw == "" {
		raw = "pdf"
	}
	format, err := valueobject.NewDocumentFormat(strings.ToLower(raw))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := h.generate.Execute(r.Context(), id, format)
	if err != nil {
		if errors.Is(err, port.ErrFilingNotFound) {
			writeError(w, http.StatusNotFound, "filing not found")
			return
		}
		h.logger.Error("document generation failed",
			"id", id, "format", format.String(), "error", err)
		writeError(w, http.StatusInternalServerError, "could not generate document")
		return
	}

	documentsGenerated.WithLabelValues(format.String()).Inc()
	documentBytes.WithLabelValues(format.String()).Observe(float64(len(out.Data)))

	w.Header().Set("Content-Type", out.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
