package storage

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultCacheExp      = 24 * time.Hour
	defaultClearInterval = 1 * time.Hour
)

// CachedStorage is a read-through decorator caching FindByShort hits.
// Records are immutable once written, so cached entries can never go
// stale; the expiry only bounds memory.
type CachedStorage struct {
	StorageI
	cache *gocache.Cache
}

func NewCachedStorage(st StorageI) *CachedStorage {
	return &CachedStorage{
		StorageI: st,
		cache:    gocache.New(defaultCacheExp, defaultClearInterval),
	}
}

func (c *CachedStorage) FindByShort(ctx context.Context, short string) (URLRecord, error) {
	if cached, found := c.cache.Get(short); found {
		return cached.(URLRecord), nil
	}

	rec, err := c.StorageI.FindByShort(ctx, short)
	if err != nil {
		// Misses are not cached: the key may be inserted right after.
		return URLRecord{}, err
	}

	c.cache.Set(short, rec, gocache.DefaultExpiration)
	return rec, nil
}
