// Package memory provides an in-process filing store used by tests and by
// deployments that do not need persistence across restarts.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/concursalia/filingdocs/internal/domain/model"
	"github.com/concursalia/filingdocs/internal/domain/port"
)

// FilingRepository is a concurrency-safe map-backed store.
type FilingRepository struct {
	mu      sync.RWMutex
	filings map[uuid.UUID]model.FilingRecord
}

func NewFilingRepository() *FilingRepository {
	return &FilingRepository{filings: make(map[uuid.UUID]model.FilingRecord)}
}

func (r *FilingRepository) Save(_ context.Context, rec model.FilingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filings[rec.ID] = rec
	return nil
}

func (r *FilingRepository) FindByID(_ context.Context, id uuid.UUID) (model.FilingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.filings[id]
	if !ok {
		return model.FilingRecord{}, port.ErrFilingNotFound
	}
	return rec, nil
}
