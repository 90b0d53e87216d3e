package store

import (
	"context"
	"fmt"
	"os"

	"github.com/spectexnika/listing-api/internal/models"
)

// FileStore keeps each collection in a flat JSON file.
type FileStore struct {
	paths map[string]string
}

// NewFileStore maps collection names to file paths.
func NewFileStore(paths map[string]string) *FileStore {
	return &FileStore{paths: paths}
}

func (s *FileStore) path(collection string) (string, error) {
	path, ok := s.paths[collection]
	if !ok {
		return "", fmt.Errorf("unknown collection %q", collection)
	}
	return path, nil
}

func (s *FileStore) Load(_ context.Context, collection string) (*models.Collection, error) {
	path, err := s.path(collection)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrMissing
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	col, err := models.DecodeCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return col, nil
}

func (s *FileStore) Save(_ context.Context, collection string, col *models.Collection) error {
	path, err := s.path(collection)
	if err != nil {
		return err
	}

	raw, err := col.Encode()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", collection, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
