package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyNamespace = "cryptopay"

type redisCmdable interface {
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
}

// RedisAssetCache shares the asset list between processes. Expiry is left
// to redis via the key TTL.
type RedisAssetCache struct {
	store redisCmdable
	key   string
	ttl   time.Duration
}

// NewRedisAssetCache keys the entry by scope, the gateway base URL, so lists
// from different gateways never mix.
func NewRedisAssetCache(client redis.Cmdable, scope string, ttl time.Duration) *RedisAssetCache {
	if ttl <= 0 {
		ttl = AssetCacheTTL
	}
	return &RedisAssetCache{
		store: client,
		key:   fmt.Sprintf("%s:%s:%s", redisKeyNamespace, assetCacheKey, scope),
		ttl:   ttl,
	}
}

// NewRedisAssetCacheFromURL parses a redis:// URL and builds the cache on a new connection.
func NewRedisAssetCacheFromURL(rawURL, scope string, ttl time.Duration) (*RedisAssetCache, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisAssetCache(redis.NewClient(opts), scope, ttl), nil
}

// Key returns the redis key the asset list is stored under.
func (r *RedisAssetCache) Key() string {
	return r.key
}

func (r *RedisAssetCache) Load(ctx context.Context) ([]Asset, bool, error) {
	raw, err := r.store.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", r.key, err)
	}

	var assets []Asset
	if err := json.Unmarshal(raw, &assets); err != nil {
		return nil, false, fmt.Errorf("decode cached assets: %w", err)
	}
	return assets, true, nil
}

func (r *RedisAssetCache) Store(ctx context.Context, assets []Asset) error {
	if assets == nil {
		assets = []Asset{}
	}
	raw, err := json.Marshal(assets)
	if err != nil {
		return fmt.Errorf("encode assets: %w", err)
	}
	if err := r.store.Set(ctx, r.key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}
