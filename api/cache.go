package api

import (
	"context"
	"slices"
	"sync"
	"time"
)

// AssetCache stores the asset list under a single fixed key.
type AssetCache interface {
	// Load returns the cached assets and whether they are still fresh.
	Load(ctx context.Context) ([]Asset, bool, error)
	// Store writes assets, restarting the expiry window.
	Store(ctx context.Context, assets []Asset) error
}

// MemoryAssetCache is a single-entry in-process cache with a fixed TTL.
type MemoryAssetCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	assets    []Asset
	expiresAt time.Time
	now       func() time.Time
}

// NewMemoryAssetCache returns an empty cache whose entries live for ttl.
func NewMemoryAssetCache(ttl time.Duration) *MemoryAssetCache {
	if ttl <= 0 {
		ttl = AssetCacheTTL
	}
	return &MemoryAssetCache{ttl: ttl, now: time.Now}
}

func (m *MemoryAssetCache) Load(_ context.Context) ([]Asset, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.assets == nil || !m.now().Before(m.expiresAt) {
		return nil, false, nil
	}
	return slices.Clone(m.assets), true, nil
}

func (m *MemoryAssetCache) Store(_ context.Context, assets []Asset) error {
	if assets == nil {
		assets = []Asset{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.assets = slices.Clone(assets)
	m.expiresAt = m.now().Add(m.ttl)
	return nil
}

// GetAssets returns the supported assets, served from the cache while fresh.
// Concurrent misses share a single getCurrencies call, which is not cancelled
// when the caller that started it goes away.
func (c *Client) GetAssets(ctx context.Context) ([]Asset, error) {
	if assets, ok := c.loadAssets(ctx); ok {
		return assets, nil
	}

	v, err, _ := c.fetches.Do(assetCacheKey, func() (any, error) {
		fetchCtx := context.WithoutCancel(ctx)
		// another caller may have refreshed the entry while we waited
		if assets, ok := c.loadAssets(fetchCtx); ok {
			return assets, nil
		}
		assets, err := getResult[[]Asset](fetchCtx, c, methodGetCurrencies, nil)
		if err != nil {
			return nil, err
		}
		if err := c.assets.Store(fetchCtx, assets); err != nil {
			c.log.Warn().Err(err).Msg("store asset cache")
		}
		return assets, nil
	})
	if err != nil {
		return nil, err
	}
	// every waiter gets its own copy of the shared result
	return slices.Clone(v.([]Asset)), nil
}

// GetCurrencies is an alias of GetAssets.
func (c *Client) GetCurrencies(ctx context.Context) ([]Asset, error) {
	return c.GetAssets(ctx)
}

func (c *Client) loadAssets(ctx context.Context) ([]Asset, bool) {
	assets, ok, err := c.assets.Load(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("load asset cache")
		return nil, false
	}
	return assets, ok
}
