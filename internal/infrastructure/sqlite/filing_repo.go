// Package sqlite persists filings in an embedded SQLite database. Records
// are stored as JSON blobs: the document core only ever loads one filing by
// id, so a relational breakdown would buy nothing.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/concursalia/filingdocs/internal/domain/model"
	"github.com/concursalia/filingdocs/internal/domain/port"
)

const schema = `
CREATE TABLE IF NOT EXISTS filings (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	created_at TEXT NOT NULL,
	record     BLOB NOT NULL
);
`

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// modernc's driver serialises writes itself; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// FilingRepository implements port.FilingRepository on a SQLite database.
type FilingRepository struct {
	db *sql.DB
}

func NewFilingRepository(db *sql.DB) *FilingRepository {
	return &FilingRepository{db: db}
}

func (r *FilingRepository) Save(ctx context.Context, rec model.FilingRecord) error {
	blob, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode filing %s: %w", rec.ID, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO filings (id, kind, created_at, record) VALUES (?, ?, ?, ?)`,
		rec.ID.String(), rec.Kind, rec.CreatedAt.UTC().Format(time.RFC3339), blob)
	if err != nil {
		return fmt.Errorf("store filing %s: %w", rec.ID, err)
	}
	return nil
}

func (r *FilingRepository) FindByID(ctx context.Context, id uuid.UUID) (model.FilingRecord, error) {
	var blob []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT record FROM filings WHERE id = ?`, id.String()).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return model.FilingRecord{}, port.ErrFilingNotFound
	}
	if err != nil {
		return model.FilingRecord{}, fmt.Errorf("load filing %s: %w", id, err)
	}

	var rec model.FilingRecord
	if err := json.Unmarshal(blob, &rec); err != nil {
		return model.FilingRecord{}, fmt.Errorf("decode filing %s: %w", id, err)
	}
	return rec, nil
}
