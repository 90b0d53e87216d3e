// Package store persists listing collections as whole JSON documents.
// Three backends share one contract: load the full document, save the
// full document. Envelope-vs-bare-array handling lives in the models
// codec, so every backend round-trips the original shape.
package store

import (
	"context"
	"errors"

	"github.com/spectexnika/listing-api/internal/models"
)

// ErrMissing is returned when a collection's backing resource does not
// exist. Callers decide whether that is an error or an empty collection.
var ErrMissing = errors.New("collection not available")

// Collection names used across the API.
const (
	Products  = "products"
	Equipment = "equipment"
	News      = "news"
)

// RecordStore loads and saves a named collection in full. Writes are
// whole-document overwrites; serialization of concurrent mutators is the
// caller's job.
type RecordStore interface {
	Load(ctx context.Context, collection string) (*models.Collection, error)
	Save(ctx context.Context, collection string, col *models.Collection) error
}
