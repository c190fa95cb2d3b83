package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/concursalia/filingdocs/internal/compose"
	"github.com/concursalia/filingdocs/internal/domain/port"
	"github.com/concursalia/filingdocs/internal/domain/valueobject"
	"github.com/concursalia/filingdocs/internal/render"
)

// GeneratedDocument is the result of one generation call, ready for the
// transport boundary.
type GeneratedDocument struct {
	FileName    string
	ContentType string
	Data        []byte
}

// GenerateDocument loads a stored filing, composes its document tree once,
// and renders it with the backend matching the requested format.
type GenerateDocument struct {
	repo      port.FilingRepository
	builder   *compose.Builder
	renderers map[string]render.Renderer
	logger    *slog.Logger
}

func NewGenerateDocument(
	repo port.FilingRepository,
	builder *compose.Builder,
	renderers map[string]render.Renderer,
	logger *slog.Logger,
) *GenerateDocument {
	return &GenerateDocument{
		repo:      repo,
		builder:   builder,
		renderers: renderers,
		logger:    logger,
	}
}

func (uc *GenerateDocument) Execute(
	ctx context.Context,
	id uuid.UUID,
	format valueobject.DocumentFormat,
) (GeneratedDocument, error) {
	renderer, ok := uc.renderers[format.String()]
	if !ok {
		return GeneratedDocument{}, fmt.Errorf("no renderer registered for format %q", format.String())
	}

	rec, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return GeneratedDocument{}, fmt.Errorf("load filing %s: %w", id, err)
	}

	start := time.Now()
	doc := uc.builder.Build(rec)
	data, err := renderer.Render(doc)
	if err != nil {
		return GeneratedDocument{}, fmt.Errorf("render filing %s: %w", id, err)
	}

	uc.logger.Info("document generated",
		"id", rec.ID,
		"format", format.String(),
		"bytes", len(data),
		"elapsed", time.Since(start))

	return GeneratedDocument{
		FileName:    fmt.Sprintf("%s-%s.%s", rec.Kind, rec.ID, format.Extension()),
		ContentType: format.MIME(),
		Data:        data,
	}, nil
}
