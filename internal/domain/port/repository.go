package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/concursalia/filingdocs/internal/domain/model"
)

// ErrFilingNotFound is returned when no filing record exists for an ID.
var ErrFilingNotFound = errors.New("filing not found")

// FilingRepository stores finalised filing records. The generation core only
// ever reads through it; writing belongs to the ingestion boundary.
type FilingRepository interface {
	Save(ctx context.Context, rec model.FilingRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (model.FilingRecord, error)
}
