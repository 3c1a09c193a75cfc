package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"TradeCompass/internal/model"
)

// DefaultCacheTTL matches the original 5-minute quote cache.
const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	value    interface{}
	expireAt time.Time
}

// CachingFetcher wraps a Fetcher with a TTL memory cache so repeated
// analyses of the same symbol within the TTL do not hit the provider.
// Series are stored as fetched and must be treated as immutable by callers.
type CachingFetcher struct {
	inner Fetcher
	ttl   time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCachingFetcher wraps inner with a cache. A non-positive ttl uses
// DefaultCacheTTL.
func NewCachingFetcher(inner Fetcher, ttl time.Duration) *CachingFetcher {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachingFetcher{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *CachingFetcher) Name() string { return c.inner.Name() }

func (c *CachingFetcher) lookup(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expireAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *CachingFetcher) store(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, expireAt: time.Now().Add(c.ttl)}
}

func (c *CachingFetcher) FetchDaily(ctx context.Context, symbol string, days int) (*model.PriceSeries, error) {
	key := fmt.Sprintf("daily:%s:%d", symbol, days)
	if v, ok := c.lookup(key); ok {
		return v.(*model.PriceSeries), nil
	}
	series, err := c.inner.FetchDaily(ctx, symbol, days)
	if err != nil {
		return nil, err
	}
	c.store(key, series)
	return series, nil
}

func (c *CachingFetcher) FetchIntraday(ctx context.Context, symbol string) (*model.PriceSeries, error) {
	key := "intraday:" + symbol
	if v, ok := c.lookup(key); ok {
		return v.(*model.PriceSeries), nil
	}
	series, err := c.inner.FetchIntraday(ctx, symbol)
	if err != nil {
		return nil, err
	}
	c.store(key, series)
	return series, nil
}
