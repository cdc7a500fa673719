package api

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRedis struct {
	values  map[string]string
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	setCall int
}

func newMockRedis() *mockRedis {
	return &mockRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *mockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	if m.getErr != nil {
		cmd.SetErr(m.getErr)
		return cmd
	}
	val, ok := m.values[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(val)
	return cmd
}

func (m *mockRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.setCall++
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	if m.setErr != nil {
		cmd.SetErr(m.setErr)
		return cmd
	}
	switch v := value.(type) {
	case []byte:
		m.values[key] = string(v)
	case string:
		m.values[key] = v
	}
	m.ttls[key] = expiration
	cmd.SetVal("OK")
	return cmd
}

func newTestRedisCache(store *mockRedis, scope string) *RedisAssetCache {
	return &RedisAssetCache{store: store, key: redisKeyNamespace + ":" + assetCacheKey + ":" + scope, ttl: AssetCacheTTL}
}

func TestRedisAssetCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMockRedis()
	cache := newTestRedisCache(store, MainnetBaseURL)

	_, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Store(ctx, []Asset{{Code: "TON", Name: "Toncoin"}}))
	assert.Equal(t, AssetCacheTTL, store.ttls["cryptopay:assets:"+MainnetBaseURL])

	assets, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []Asset{{Code: "TON", Name: "Toncoin"}}, assets)
}

func TestRedisAssetCacheErrors(t *testing.T) {
	ctx := context.Background()
	store := newMockRedis()
	cache := newTestRedisCache(store, "scope")

	store.getErr = errors.New("connection reset")
	_, ok, err := cache.Load(ctx)
	assert.False(t, ok)
	assert.ErrorContains(t, err, "connection reset")

	store.getErr = nil
	store.values[cache.key] = "{not json"
	_, ok, err = cache.Load(ctx)
	assert.False(t, ok)
	assert.Error(t, err)

	store.setErr = errors.New("readonly")
	assert.ErrorContains(t, cache.Store(ctx, nil), "readonly")
}

func TestGetAssetsFallsBackWhenRedisFails(t *testing.T) {
	var calls atomic.Int32
	store := newMockRedis()
	store.getErr = errors.New("redis down")
	store.setErr = errors.New("redis down")

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, assetsBody)
	}, WithAssetCache(newTestRedisCache(store, "test")))

	assets, err := client.GetAssets(context.Background())
	require.NoError(t, err)
	assert.Len(t, assets, 2)
	assert.Equal(t, 1, store.setCall)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewRedisAssetCacheFromURL(t *testing.T) {
	cache, err := NewRedisAssetCacheFromURL("redis://localhost:6379/2", TestnetBaseURL, 0)
	require.NoError(t, err)
	assert.Equal(t, AssetCacheTTL, cache.ttl)
	assert.Equal(t, "cryptopay:assets:"+TestnetBaseURL, cache.Key())

	_, err = NewRedisAssetCacheFromURL("http://not-redis", "x", 0)
	assert.Error(t, err)
}
