package api

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const assetsBody = `{"ok":true,"result":[{"code":"TON","name":"Toncoin","is_fiat":false,"is_blockchain":true,"decimals":9},{"code":"USD","name":"US Dollar","is_fiat":true}]}`

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestMemoryAssetCacheExpiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewMemoryAssetCache(time.Hour)
	cache.now = clock.Now

	_, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "empty cache must miss")

	require.NoError(t, cache.Store(ctx, []Asset{{Code: "TON"}}))

	clock.Advance(59 * time.Minute)
	assets, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []Asset{{Code: "TON"}}, assets)

	clock.Advance(time.Minute)
	_, ok, err = cache.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "entry must expire exactly one ttl after the write")
}

func TestMemoryAssetCacheStoresEmptyList(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryAssetCache(0)
	assert.Equal(t, AssetCacheTTL, cache.ttl)

	require.NoError(t, cache.Store(ctx, nil))
	assets, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, assets)
}

func TestGetAssetsCachesForOneHour(t *testing.T) {
	var calls atomic.Int32
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	cache := NewMemoryAssetCache(AssetCacheTTL)
	cache.now = clock.Now

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/getCurrencies", r.URL.Path)
		calls.Add(1)
		writeJSON(w, http.StatusOK, assetsBody)
	}, WithAssetCache(cache))

	ctx := context.Background()
	first, err := client.GetAssets(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "TON", first[0].Code)
	assert.True(t, first[1].IsFiat)

	clock.Advance(30 * time.Minute)
	second, err := client.GetCurrencies(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())

	clock.Advance(31 * time.Minute)
	_, err = client.GetAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetAssetsCoalescesConcurrentMisses(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		writeJSON(w, http.StatusOK, assetsBody)
	})

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.GetAssets(context.Background())
			errs <- err
		}()
	}

	// let the callers pile up behind the in-flight fetch
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetAssetsSurvivesCancelledLeader(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		writeJSON(w, http.StatusOK, assetsBody)
	})

	leaderCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	var leaderErr, followerErr error
	var followerAssets []Asset

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, leaderErr = client.GetAssets(leaderCtx)
	}()
	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		followerAssets, followerErr = client.GetAssets(context.Background())
	}()

	// let the second caller join the in-flight fetch, then drop the first
	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, followerErr)
	assert.Len(t, followerAssets, 2)
	assert.NoError(t, leaderErr)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetAssetsReturnsIndependentCopies(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, assetsBody)
	})

	ctx := context.Background()
	first, err := client.GetAssets(ctx)
	require.NoError(t, err)
	first[0].Code = "MUTATED"

	second, err := client.GetAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, "TON", second[0].Code)

	second[1].Name = "changed"
	third, err := client.GetAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, "US Dollar", third[1].Name)
}

func TestMemoryAssetCacheCopiesOnStoreAndLoad(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryAssetCache(time.Hour)

	stored := []Asset{{Code: "TON"}}
	require.NoError(t, cache.Store(ctx, stored))
	stored[0].Code = "BTC"

	loaded, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "TON", loaded[0].Code)

	loaded[0].Code = "ETH"
	again, _, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "TON", again[0].Code)
}

func TestGetAssetsDoesNotCacheFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, http.StatusOK, `{"ok":false,"error_code":500,"description":"INTERNAL"}`)
			return
		}
		writeJSON(w, http.StatusOK, assetsBody)
	})

	ctx := context.Background()
	_, err := client.GetAssets(ctx)
	require.Error(t, err)
	assert.True(t, IsAPIError(err))

	assets, err := client.GetAssets(ctx)
	require.NoError(t, err)
	assert.Len(t, assets, 2)
	assert.Equal(t, int32(2), calls.Load())
}
