// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sitemap

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/folio/internal/platform/constants"
)

// ErrNoArtifact is returned by [ArtifactStore.Load] before the first rebuild.
var ErrNoArtifact = errors.New("sitemap: no artifact stored")

// ArtifactStore persists the latest rendered sitemap.
type ArtifactStore interface {
	Save(ctx context.Context, document []byte) error
	Load(ctx context.Context) ([]byte, error)
}

// RedisStore keeps the sitemap under a single Redis key without expiry.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore binds the store to [constants.RedisKeySitemap].
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, key: constants.RedisKeySitemap}
}

// Save overwrites the stored document.
func (store *RedisStore) Save(ctx context.Context, document []byte) error {
	if err := store.client.Set(ctx, store.key, document, 0).Err(); err != nil {
		return fmt.Errorf("redis: save sitemap: %w", err)
	}
	return nil
}

// Load returns the stored document or [ErrNoArtifact].
func (store *RedisStore) Load(ctx context.Context) ([]byte, error) {
	document, err := store.client.Get(ctx, store.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoArtifact
	}
	if err != nil {
		return nil, fmt.Errorf("redis: load sitemap: %w", err)
	}
	return document, nil
}
