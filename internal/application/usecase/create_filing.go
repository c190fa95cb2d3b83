// Package usecase wires the domain core to the storage port and the
// rendering backends.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/concursalia/filingdocs/internal/application/dto"
	"github.com/concursalia/filingdocs/internal/domain/port"
)

// ErrInvalidPayload marks ingestion failures the caller should map to a
// client error.
var ErrInvalidPayload = errors.New("invalid filing payload")

// CreateFiling ingests a filing payload and persists the resulting record.
type CreateFiling struct {
	repo   port.FilingRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewCreateFiling(repo port.FilingRepository, logger *slog.Logger) *CreateFiling {
	return &CreateFiling{repo: repo, logger: logger, now: time.Now}
}

// Execute validates the payload, assigns it an identity and a received
// stamp, and stores the record.
func (uc *CreateFiling) Execute(ctx context.Context, payload dto.FilingPayload) (uuid.UUID, error) {
	if err := payload.Validate(); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	rec := payload.ToModel(uuid.New(), uc.now().UTC().Truncate(time.Second))
	if err := uc.repo.Save(ctx, rec); err != nil {
		return uuid.Nil, fmt.Errorf("save filing: %w", err)
	}

	uc.logger.Info("filing stored",
		"id", rec.ID,
		"kind", rec.Kind,
		"creditors", len(rec.Creditors))
	return rec.ID, nil
}
