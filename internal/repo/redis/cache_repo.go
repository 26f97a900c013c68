package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
)

const verifiedCatalogKey = "catalog:accommodations:verified"

// CacheRepo keeps a short-lived copy of the verified accommodation catalog.
// Scores are never cached: they depend on booking state.
type CacheRepo struct {
	client *goredis.Client
}

func NewCacheRepo(client *goredis.Client) *CacheRepo {
	return &CacheRepo{client: client}
}

func (r *CacheRepo) GetVerifiedCatalog(ctx context.Context) ([]model.Accommodation, bool, error) {
	if r.client == nil {
		return nil, false, fmt.Errorf("redis client is nil")
	}

	data, err := r.client.Get(ctx, verifiedCatalogKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get catalog cache: %w", err)
	}

	var items []model.Accommodation
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("unmarshal catalog cache: %w", err)
	}
	return items, true, nil
}

func (r *CacheRepo) SetVerifiedCatalog(ctx context.Context, items []model.Accommodation, ttl time.Duration) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal catalog cache: %w", err)
	}
	if err := r.client.Set(ctx, verifiedCatalogKey, payload, ttl).Err(); err != nil {
		return fmt.Errorf("set catalog cache: %w", err)
	}
	return nil
}

func (r *CacheRepo) InvalidateVerifiedCatalog(ctx context.Context) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if err := r.client.Del(ctx, verifiedCatalogKey).Err(); err != nil {
		return fmt.Errorf("invalidate catalog cache: %w", err)
	}
	return nil
}
