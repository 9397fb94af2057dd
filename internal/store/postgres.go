package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitrine-erp/vitrine-erp/internal/platform/db"
)

// PG is the PostgreSQL backed Store. Each collection lives in one JSONB
// row; saves are upserts of the whole document.
type PG struct {
	pool *pgxpool.Pool
}

// NewPG constructs a PG store.
func NewPG(pool *pgxpool.Pool) *PG {
	return &PG{pool: pool}
}

// EnsureSchema creates the collections table when missing.
func (s *PG) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("store: ensure schema: %w", err)
	}
	return nil
}

// Load unmarshals the named collection into dest.
func (s *PG) Load(ctx context.Context, name string, dest any) error {
	raw, err := s.LoadRaw(ctx, name)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("store: decode %s: %w", name, err)
	}
	return nil
}

// Save overwrites the named collection.
func (s *PG) Save(ctx context.Context, name string, value any) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", name, err)
	}
	return s.SaveRaw(ctx, name, doc)
}

// LoadRaw returns the stored JSON document, nil when absent.
func (s *PG) LoadRaw(ctx context.Context, name string) (json.RawMessage, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT doc FROM collections WHERE name = $1`, name).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", name, err)
	}
	return raw, nil
}

// SaveRaw overwrites the named collection with a pre-encoded document.
func (s *PG) SaveRaw(ctx context.Context, name string, doc json.RawMessage) error {
	const query = `
		INSERT INTO collections (name, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`
	if _, err := s.pool.Exec(ctx, query, name, []byte(doc)); err != nil {
		return fmt.Errorf("store: save %s: %w", name, err)
	}
	return nil
}

// SaveRawAll overwrites several collections in a single transaction, so
// a partial restore can never be observed.
func (s *PG) SaveRawAll(ctx context.Context, docs map[string]json.RawMessage) error {
	const query = `
		INSERT INTO collections (name, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`
	return db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		for name, doc := range docs {
			if _, err := tx.Exec(ctx, query, name, []byte(doc)); err != nil {
				return fmt.Errorf("store: save %s: %w", name, err)
			}
		}
		return nil
	})
}
