package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/spectexnika/listing-api/internal/database"
	"github.com/spectexnika/listing-api/internal/models"
)

// PostgresStore keeps each collection as a single JSONB document row.
type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(ctx context.Context, collection string) (*models.Collection, error) {
	var raw []byte
	err := s.db.Pool.QueryRow(ctx, `
		SELECT doc FROM listing_collections WHERE name = $1
	`, collection).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMissing
	}
	if err != nil {
		return nil, fmt.Errorf("loading collection %s: %w", collection, err)
	}

	col, err := models.DecodeCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing collection %s: %w", collection, err)
	}
	return col, nil
}

func (s *PostgresStore) Save(ctx context.Context, collection string, col *models.Collection) error {
	raw, err := col.Encode()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", collection, err)
	}

	_, err = s.db.Pool.Exec(ctx, `
		INSERT INTO listing_collections (name, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
	`, collection, raw)
	if err != nil {
		return fmt.Errorf("saving collection %s: %w", collection, err)
	}
	return nil
}
