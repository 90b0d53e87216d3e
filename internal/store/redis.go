package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/spectexnika/listing-api/internal/models"
)

// RedisStore keeps each collection as a JSON document under one key.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(collection string) string {
	return fmt.Sprintf("collection:%s", collection)
}

func (s *RedisStore) Load(ctx context.Context, collection string) (*models.Collection, error) {
	raw, err := s.client.Get(ctx, key(collection)).Bytes()
	if errors.Is(err, redis.Nil) {
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

func (s *RedisStore) Save(ctx context.Context, collection string, col *models.Collection) error {
	raw, err := col.Encode()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", collection, err)
	}
	if err := s.client.Set(ctx, key(collection), raw, 0).Err(); err != nil {
		return fmt.Errorf("saving collection %s: %w", collection, err)
	}
	return nil
}
